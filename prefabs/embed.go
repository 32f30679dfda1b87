package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var assets embed.FS

// assetRoot is where on-disk overrides live, relative to the working dir.
const assetRoot = "prefabs"

// Load reads a spec file. A copy under prefabs/ on disk wins over the
// embedded one so hot reload sees edits without a rebuild.
func Load(name string) ([]byte, error) {
	return readAsset(cleanPrefabPath(name))
}

// LoadScript reads a behaviour script by bare name or any prefixed path.
func LoadScript(name string) ([]byte, error) {
	return readAsset(cleanScriptPath(name))
}

func readAsset(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(assetRoot, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return assets.ReadFile(rel)
}

func cleanPrefabPath(name string) string {
	s := filepath.ToSlash(name)
	return strings.TrimPrefix(s, assetRoot+"/")
}

func cleanScriptPath(name string) string {
	s := cleanPrefabPath(name)
	s = strings.TrimPrefix(s, "scripts/")
	return path.Join("scripts", s)
}
