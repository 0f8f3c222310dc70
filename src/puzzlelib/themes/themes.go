package themes

import "flipfit/src/puzzlelib/base"

// image refs resolved by the GUI assets worker
const (
	AnimalsPiece = "animals-piece-1"
	AnimalsBack  = "animals-back"
	OceanPiece   = "ocean-piece-1"
	OceanBack    = "ocean-back"
	SpacePiece   = "space-piece-1"
	SpaceBack    = "space-back"
)

var catalog = []base.Theme{
	{
		ID:        "animals",
		Name:      "Forest Animals",
		Pieces:    fill(AnimalsPiece),
		BackImage: AnimalsBack,
		Preview:   AnimalsPiece,
	},
	{
		ID:        "ocean",
		Name:      "Ocean Adventure",
		Pieces:    fill(OceanPiece),
		BackImage: OceanBack,
		Preview:   OceanPiece,
	},
	{
		ID:        "space",
		Name:      "Space Explorer",
		Pieces:    fill(SpacePiece),
		BackImage: SpaceBack,
		Preview:   SpacePiece,
	},
}

// one image repeated for every tile
func fill(img string) []string {
	s := make([]string, base.PieceCount)
	for i := range s {
		s[i] = img
	}
	return s
}

func All() []base.Theme {
	out := make([]base.Theme, len(catalog))
	for i, t := range catalog {
		out[i] = t.Clone()
	}
	return out
}

func ByID(id string) (base.Theme, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return base.Theme{}, false
}

func ByName(name string) (base.Theme, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t.Clone(), true
		}
	}
	return base.Theme{}, false
}

