package admin

import (
	"context"
	"fmt"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/samber/lo"
)

// buildRelations 分阶段推断关系：外键belongs-to、反向has-many、中间表多对多
func (my *Configurator) buildRelations(ctx context.Context, models []*Model, index map[string]*Model) (map[string][]*Relation, error) {
	position := make(map[string]int, len(models))
	for i, m := range models {
		position[m.Name] = i
	}

	// 第一阶段：xxx_id列指向已配置模型时生成belongs-to，按模型位置存放
	belongs := make([][]*Relation, len(models))
	for i, m := range models {
		for _, c := range m.Columns() {
			name, ok := ForeignModel(c.Name)
			if !ok {
				continue
			}
			target, ok := index[name]
			if !ok {
				my.logger.Warn().Str("model", m.Name).Str("column", c.Name).Str("target", name).Msg("外键指向未配置的模型，忽略")
				continue
			}
			belongs[i] = append(belongs[i], &Relation{Left: m, Right: target, Kind: BelongsTo})
			my.logger.Info().Str("left", m.Name).Str("right", name).Msg("添加belongs-to关系")
		}
	}

	// 第二阶段：只读belongs，反向补全写入独立列表
	hasMany := make([][]*Relation, len(models))
	for _, list := range belongs {
		for _, r := range list {
			j := position[r.Right.Name]
			oneToOne := slice.ContainBy(belongs[j], func(b *Relation) bool {
				return b != r && b.Right == r.Left
			})
			if oneToOne {
				my.logger.Debug().Str("left", r.Left.Name).Str("right", r.Right.Name).Msg("双向belongs-to，不生成has-many")
				continue
			}
			hasMany[j] = append(hasMany[j], &Relation{Left: r.Right, Right: r.Left, Kind: HasMany})
			my.logger.Info().Str("left", r.Right.Name).Str("right", r.Left.Name).Msg("添加has-many关系")
		}
	}

	relations := make(map[string][]*Relation, len(models))
	for i, m := range models {
		relations[m.Name] = append(append(make([]*Relation, 0, len(belongs[i])+len(hasMany[i])), belongs[i]...), hasMany[i]...)
	}

	// 第三阶段：存在中间表的模型对生成双向多对多
	for i := 0; i < len(models); i++ {
		for j := i + 1; j < len(models); j++ {
			a, b := models[i], models[j]
			pivot := PivotTable(a.Name, b.Name)
			ok, err := my.provider.HasTable(ctx, pivot)
			if err != nil {
				return nil, fmt.Errorf("%w: 查询中间表%s失败: %w", ErrConfiguration, pivot, err)
			}
			if !ok {
				continue
			}
			relations[a.Name] = append(relations[a.Name], &Relation{Left: a, Right: b, Kind: HasAndBelongsToMany})
			relations[b.Name] = append(relations[b.Name], &Relation{Left: b, Right: a, Kind: HasAndBelongsToMany})
			my.logger.Info().Str("left", a.Name).Str("right", b.Name).Str("pivot", pivot).Msg("添加多对多关系")
		}
	}
	return relations, nil
}

// Relations 返回全部模型的关系
func (my *Configurator) Relations() (map[string][]*Relation, error) {
	if !my.configured {
		return nil, ErrNotConfigured
	}
	return lo.MapValues(my.relations, func(list []*Relation, _ string) []*Relation {
		return append([]*Relation{}, list...)
	}), nil
}

// RelationsForModel 返回模型的关系，没有时返回空切片
func (my *Configurator) RelationsForModel(model *Model) ([]*Relation, error) {
	if !my.configured {
		return nil, ErrNotConfigured
	}
	if model == nil {
		return []*Relation{}, nil
	}
	return append([]*Relation{}, my.relations[model.Name]...), nil
}
