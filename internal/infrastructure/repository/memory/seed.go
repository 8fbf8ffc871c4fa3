package memory

import (
	"github.com/riskibarqy/league-admin/internal/domain/civilization"
	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
)

// SeedCivilizations is the reference civilization list loaded into fresh
// stores and used by the demo data generator.
func SeedCivilizations() []civilization.Civilization {
	names := []string{
		"Aztecs", "Britons", "Byzantines", "Celts", "Chinese", "Franks",
		"Goths", "Huns", "Japanese", "Mayans", "Mongols", "Persians",
		"Saracens", "Spanish", "Teutons", "Turks", "Vikings",
	}
	out := make([]civilization.Civilization, 0, len(names))
	for _, name := range names {
		out = append(out, civilization.Civilization{Name: name})
	}
	return out
}

func SeedMaps() []gamemap.Map {
	names := []string{"Arabia", "Arena", "Black Forest", "Islands", "Nomad"}
	out := make([]gamemap.Map, 0, len(names))
	for _, name := range names {
		out = append(out, gamemap.Map{Name: name})
	}
	return out
}
