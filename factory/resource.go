package factory

import (
	"fmt"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/router"
	"github.com/ichaly/auja/ui"
)

// Row 一行数据，键为列名
type Row = map[string]any

const idField = "id"

func idOf(row Row) (any, bool) {
	if row == nil {
		return nil, false
	}
	id, ok := row[idField]
	return id, ok && id != nil
}

// ResourceItemFactory 生成模型列表入口
type ResourceItemFactory struct {
	configurator *admin.Configurator
	router       *router.Router
}

func NewResourceItemFactory(c *admin.Configurator, r *router.Router) *ResourceItemFactory {
	return &ResourceItemFactory{configurator: c, router: r}
}

func (my *ResourceItemFactory) Create(model *admin.Model, override *admin.ModelConfig) (*ui.ResourceMenuItem, error) {
	searchable, err := my.configurator.IsSearchable(model, override)
	if err != nil {
		return nil, err
	}
	target := my.router.URL(my.router.IndexName(model.Name))
	item := &ui.ResourceMenuItem{Target: target}
	if searchable {
		item.AddProperty(&ui.Searchable{Target: router.Query(target, "q", "%s")})
	}
	return item, nil
}

// ResourceItemsFactory 把数据行转换为列表条目
type ResourceItemsFactory struct {
	configurator *admin.Configurator
	router       *router.Router
}

func NewResourceItemsFactory(c *admin.Configurator, r *router.Router) *ResourceItemsFactory {
	return &ResourceItemsFactory{configurator: c, router: r}
}

// Create 生成条目，序号从offset开始；模型存在一对多或多对多关系时条目指向详情菜单，否则指向编辑页
func (my *ResourceItemsFactory) Create(
	model *admin.Model, rows []Row, nextPageURL string, offset int, override *admin.ModelConfig,
) (*ui.Resource, error) {
	res := &ui.Resource{}
	if len(rows) == 0 {
		return res, nil
	}

	c, err := my.configurator.Config(model, override)
	if err != nil {
		return nil, err
	}
	relations, err := my.configurator.RelationsForModel(model)
	if err != nil {
		return nil, err
	}
	target := my.router.EditName(model.Name)
	if slice.ContainBy(relations, func(r *admin.Relation) bool { return r.IsAssociation() }) {
		target = my.router.ShowMenuName(model.Name)
	}

	for i, row := range rows {
		id, _ := idOf(row)
		res.AddItem(&ui.LinkMenuItem{
			Text:   text(row[c.DisplayField]),
			Target: my.router.URL(target, id),
			Icon:   c.Icon,
			Order:  offset + i,
		})
	}
	res.NextPageURL = nextPageURL
	return res, nil
}

// NextPage 根据页码与总数生成下一页地址，已是最后一页时返回空串
func NextPage(target string, page, size int, total int64) string {
	if size <= 0 || int64(page*size) >= total {
		return ""
	}
	return router.Query(target, "page", page+1)
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
