package admin

import (
	"fmt"

	"github.com/ichaly/auja/utl"
)

type RelationKind string

const (
	BelongsTo           RelationKind = "BELONGS_TO"
	HasMany             RelationKind = "HAS_MANY"
	HasAndBelongsToMany RelationKind = "HAS_AND_BELONGS_TO_MANY"
)

// Relation 模型间的有向关系，Left为关系的拥有方
type Relation struct {
	Left  *Model
	Right *Model
	Kind  RelationKind
}

// IsAssociation 是否为一对多或多对多关联
func (my *Relation) IsAssociation() bool {
	return my.Kind == HasMany || my.Kind == HasAndBelongsToMany
}

func (my *Relation) String() string {
	return fmt.Sprintf("%s %s %s", my.Left.Name, my.Kind, my.Right.Name)
}

func (my *Relation) MarshalJSON() ([]byte, error) {
	return utl.Marshal(map[string]string{
		"left":  my.Left.Name,
		"right": my.Right.Name,
		"type":  string(my.Kind),
	})
}
