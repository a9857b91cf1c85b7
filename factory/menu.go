package factory

import (
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/router"
	"github.com/ichaly/auja/ui"
	"github.com/jinzhu/inflection"
	"github.com/samber/lo"
)

// MenuFactory 生成模型的各级菜单
type MenuFactory struct {
	configurator *admin.Configurator
	router       *router.Router
	resource     *ResourceItemFactory
	translator   Translator
}

func NewMenuFactory(c *admin.Configurator, r *router.Router, f *ResourceItemFactory, t Translator) *MenuFactory {
	return &MenuFactory{configurator: c, router: r, resource: f, translator: t}
}

// Index 模型首页菜单：新增、标题、列表
func (my *MenuFactory) Index(model *admin.Model, override *admin.ModelConfig) (*ui.Menu, error) {
	item, err := my.resource.Create(model, override)
	if err != nil {
		return nil, err
	}
	menu := &ui.Menu{}
	menu.AddItem(&ui.LinkMenuItem{
		Text:   my.translator.Trans("Add"),
		Icon:   ui.IconPlus,
		Target: my.router.URL(my.router.CreateName(model.Name)),
	}).AddItem(&ui.SpacerMenuItem{
		Text: my.translator.Trans(model.Name),
	}).AddItem(item)
	return menu, nil
}

// Show 单条记录的菜单，按关联数量选择无关联、单关联或多关联样式
func (my *MenuFactory) Show(model *admin.Model, id any, override *admin.ModelConfig) (*ui.Menu, error) {
	relations, err := my.configurator.RelationsForModel(model)
	if err != nil {
		return nil, err
	}
	associations := lo.UniqBy(
		lo.Filter(relations, func(r *admin.Relation, _ int) bool { return r.IsAssociation() }),
		func(r *admin.Relation) string { return r.Right.Name },
	)
	switch len(associations) {
	case 0:
		return my.Index(model, override)
	case 1:
		return my.single(model, id, associations[0]), nil
	default:
		return my.multiple(model, id, associations), nil
	}
}

func (my *MenuFactory) single(model *admin.Model, id any, r *admin.Relation) *ui.Menu {
	other := r.Right.Name
	menu := &ui.Menu{}
	menu.AddItem(&ui.LinkMenuItem{
		Text:   my.translator.Trans("Edit"),
		Icon:   ui.IconEdit,
		Target: my.router.URL(my.router.EditName(model.Name), id),
	}).AddItem(&ui.SpacerMenuItem{
		Text: my.translator.Trans(inflection.Plural(other)),
	}).AddItem(&ui.LinkMenuItem{
		Text:   my.translator.Trans("Add") + " " + my.translator.Trans(other),
		Icon:   ui.IconPlus,
		Target: my.router.URL(my.router.CreateAssociationName(model.Name, other), id),
	}).AddItem(&ui.ResourceMenuItem{
		Target: my.router.URL(my.router.AssociationName(model.Name, other), id),
	})
	return menu
}

func (my *MenuFactory) multiple(model *admin.Model, id any, relations []*admin.Relation) *ui.Menu {
	menu := &ui.Menu{}
	menu.AddItem(&ui.LinkMenuItem{
		Text:   my.translator.Trans("Edit"),
		Icon:   ui.IconEdit,
		Target: my.router.URL(my.router.EditName(model.Name), id),
	}).AddItem(&ui.SpacerMenuItem{
		Text: my.translator.Trans("Properties"),
	})
	for i, r := range relations {
		other := r.Right.Name
		menu.AddItem(&ui.LinkMenuItem{
			Text:   my.translator.Trans(inflection.Plural(other)),
			Target: my.router.URL(my.router.AssociationMenuName(model.Name, other), id),
			Order:  i,
		})
	}
	return menu
}

// Association 某条记录下关联模型的菜单
func (my *MenuFactory) Association(model *admin.Model, id any, other string) *ui.Menu {
	menu := &ui.Menu{}
	menu.AddItem(&ui.LinkMenuItem{
		Text:   my.translator.Trans("Add") + " " + my.translator.Trans(other),
		Icon:   ui.IconPlus,
		Target: my.router.URL(my.router.CreateAssociationName(model.Name, other), id),
	}).AddItem(&ui.SpacerMenuItem{
		Text: my.translator.Trans(inflection.Plural(other)),
	}).AddItem(&ui.ResourceMenuItem{
		Target: my.router.URL(my.router.AssociationName(model.Name, other), id),
	})
	return menu
}
