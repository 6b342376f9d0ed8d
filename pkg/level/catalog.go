package level

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/types"
)

// LoadCatalog reads the typedefs database and the typeids alias table named
// by cfg, registers everything and returns the linked catalog.
func LoadCatalog(cfg *Config) (*types.Catalog, error) {
	declData, err := readMaybeZst(cfg.Types.Typedefs)
	if err != nil {
		return nil, fmt.Errorf("load typedefs: %w", err)
	}
	var decls []json.RawMessage
	if err := json.Unmarshal(declData, &decls); err != nil {
		return nil, fmt.Errorf("load typedefs %s: %w", cfg.Types.Typedefs, err)
	}

	aliases := make(map[string]string)
	if cfg.Types.TypeIDs != "" {
		aliasData, err := readMaybeZst(cfg.Types.TypeIDs)
		if err != nil {
			return nil, fmt.Errorf("load typeids: %w", err)
		}
		if err := json.Unmarshal(aliasData, &aliases); err != nil {
			return nil, fmt.Errorf("load typeids %s: %w", cfg.Types.TypeIDs, err)
		}
	}

	cat := types.NewCatalog()
	if err := cat.RegisterTypes(decls, aliases); err != nil {
		return nil, err
	}
	if err := cat.Link(); err != nil {
		return nil, err
	}
	return cat, nil
}

// readMaybeZst reads a file, transparently expanding the .zst form the
// schema databases ship in.
func readMaybeZst(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", path, err)
	}
	return out, nil
}
