package world

import "errors"

type ObjectKind string

const (
	ObjectTree  ObjectKind = "tree"
	ObjectRock  ObjectKind = "rock"
	ObjectBush  ObjectKind = "bush"
	ObjectStump ObjectKind = "stump"
)

type WorldObject struct {
	ID   string     `json:"id"`
	Kind ObjectKind `json:"kind"`
	TX   int        `json:"tx"`
	TY   int        `json:"ty"`
}

var ErrInvalidWorldObject = errors.New("invalid world object")

func (o WorldObject) Validate() error {
	if o.ID == "" || o.Kind == "" {
		return ErrInvalidWorldObject
	}
	return nil
}

// ClearTool returns the tool item id that removes this kind of object.
func (k ObjectKind) ClearTool() string {
	switch k {
	case ObjectTree, ObjectStump:
		return "axe"
	case ObjectRock:
		return "pickaxe"
	case ObjectBush:
		return "scythe"
	}
	return ""
}

// YieldItem returns the material item id dropped when the object is cleared.
func (k ObjectKind) YieldItem() string {
	switch k {
	case ObjectTree, ObjectStump:
		return "wood"
	case ObjectRock:
		return "stone"
	case ObjectBush:
		return "fiber"
	}
	return ""
}
