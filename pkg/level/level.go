package level

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/gms"
	"github.com/BlannyBlannyBlanc/BMEdit/pkg/prm"
	"github.com/BlannyBlannyBlanc/BMEdit/pkg/prp"
	"github.com/BlannyBlannyBlanc/BMEdit/pkg/scene"
	"github.com/BlannyBlannyBlanc/BMEdit/pkg/types"
)

// Level is the fully decoded asset set.
type Level struct {
	Geoms   []gms.GeomEntity
	Objects []scene.Object
	Chunks  []prm.Chunk
}

// LoadGeoms decodes the geometry entity table: the compressed section, the
// name side buffer, and the depth-driven parent links.
func LoadGeoms(cfg *Config) ([]gms.GeomEntity, error) {
	raw, err := os.ReadFile(cfg.Assets.Geometry)
	if err != nil {
		return nil, fmt.Errorf("read geometry: %w", err)
	}
	section, err := gms.DecompressSection(raw)
	if err != nil {
		return nil, err
	}
	names, err := os.ReadFile(cfg.Assets.Buffer)
	if err != nil {
		return nil, fmt.Errorf("read side buffer: %w", err)
	}
	geoms, err := gms.ReadEntities(section, names)
	if err != nil {
		return nil, err
	}
	if err := gms.LinkHierarchy(geoms); err != nil {
		return nil, err
	}
	return geoms, nil
}

// Placeholders derives the pre-order placeholder objects the scene loader
// fills, one per geometry entity.
func Placeholders(geoms []gms.GeomEntity) []scene.Object {
	out := make([]scene.Object, len(geoms))
	for i := range geoms {
		out[i] = scene.Object{
			Name:   geoms[i].Name,
			TypeID: geoms[i].TypeID,
			Parent: scene.NoParent,
		}
	}
	return out
}

// LoadScene decodes the geometry table, derives placeholders from it and
// runs the property stream over them. It returns the loaded objects along
// with the entities they mirror.
func LoadScene(cfg *Config, cat *types.Catalog) ([]scene.Object, []gms.GeomEntity, error) {
	geoms, err := LoadGeoms(cfg)
	if err != nil {
		return nil, nil, err
	}
	raw, err := os.ReadFile(cfg.Assets.Properties)
	if err != nil {
		return nil, nil, fmt.Errorf("read properties: %w", err)
	}
	ins, err := prp.Decode(raw)
	if err != nil {
		return nil, nil, err
	}
	objects := Placeholders(geoms)
	if err := scene.LoadProperties(cat, objects, ins); err != nil {
		return nil, nil, err
	}
	return objects, geoms, nil
}

// LoadChunks parses and classifies the primitive chunk container.
func LoadChunks(cfg *Config) ([]prm.Chunk, error) {
	raw, err := os.ReadFile(cfg.Assets.Primitives)
	if err != nil {
		return nil, fmt.Errorf("read primitives: %w", err)
	}
	return prm.ParseContainer(raw)
}

// LoadLevel decodes the whole asset set named by cfg. Any failure aborts
// the load; no partial level is returned.
func LoadLevel(cfg *Config, cat *types.Catalog, log zerolog.Logger) (*Level, error) {
	objects, geoms, err := LoadScene(cfg, cat)
	if err != nil {
		log.Error().Err(err).Msg("scene decode failed")
		return nil, err
	}
	log.Debug().
		Int("entities", len(geoms)).
		Int("objects", len(objects)).
		Msg("scene graph loaded")

	chunks, err := LoadChunks(cfg)
	if err != nil {
		log.Error().Err(err).Msg("primitive decode failed")
		return nil, err
	}
	log.Debug().Int("chunks", len(chunks)).Msg("primitives classified")

	return &Level{Geoms: geoms, Objects: objects, Chunks: chunks}, nil
}
