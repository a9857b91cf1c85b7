package router

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/log"
)

// Controller 模型资源的处理器，model为模型名，other为关联模型名
type Controller interface {
	Index(c *fiber.Ctx, model string) error
	Menu(c *fiber.Ctx, model string) error
	Create(c *fiber.Ctx, model string) error
	Store(c *fiber.Ctx, model string) error
	Show(c *fiber.Ctx, model string) error
	Edit(c *fiber.Ctx, model string) error
	Update(c *fiber.Ctx, model string) error
	Delete(c *fiber.Ctx, model string) error
	Association(c *fiber.Ctx, model, other string) error
	AssociationMenu(c *fiber.Ctx, model, other string) error
	CreateAssociation(c *fiber.Ctx, model, other string) error
}

type route struct {
	method  string
	name    string
	handler fiber.Handler
}

// Resource 在r上注册模型的全部路由，包括每个关系对应的关联路由，路径相对于前缀
func (my *Router) Resource(r fiber.Router, c *admin.Configurator, ref ModelRef, ctl Controller) error {
	model, err := c.Model(ref.ModelName())
	if err != nil {
		return err
	}
	relations, err := c.RelationsForModel(model)
	if err != nil {
		return err
	}

	name := model.Name
	routes := []route{
		{fiber.MethodGet, my.IndexName(name), bind(ctl.Index, name)},
		{fiber.MethodGet, my.MenuName(name), bind(ctl.Menu, name)},
		{fiber.MethodGet, my.CreateName(name), bind(ctl.Create, name)},
		{fiber.MethodPost, my.StoreName(name), bind(ctl.Store, name)},
		{fiber.MethodGet, my.ShowMenuName(name), bind(ctl.Menu, name)},
	}
	// 关联路由需在/:id之前注册
	seen := make(map[string]bool)
	for _, rel := range relations {
		other := rel.Right.Name
		if seen[other] {
			continue
		}
		seen[other] = true
		routes = append(routes,
			route{fiber.MethodGet, my.AssociationMenuName(name, other), bindWith(ctl.AssociationMenu, name, other)},
			route{fiber.MethodGet, my.CreateAssociationName(name, other), bindWith(ctl.CreateAssociation, name, other)},
			route{fiber.MethodGet, my.AssociationName(name, other), bindWith(ctl.Association, name, other)},
		)
	}
	routes = append(routes,
		route{fiber.MethodGet, my.EditName(name), bind(ctl.Edit, name)},
		route{fiber.MethodGet, my.ShowName(name), bind(ctl.Show, name)},
		route{fiber.MethodPut, my.UpdateName(name), bind(ctl.Update, name)},
		route{fiber.MethodDelete, my.DeleteName(name), bind(ctl.Delete, name)},
	)

	for _, rt := range routes {
		path, ok := my.Path(rt.name)
		if !ok {
			return fmt.Errorf("路由未定义: %s", rt.name)
		}
		r.Add(rt.method, path, rt.handler).Name(rt.name)
	}
	log.Debug().Str("model", name).Int("routes", len(routes)).Msg("注册模型路由")
	return nil
}

func bind(h func(*fiber.Ctx, string) error, model string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h(c, model)
	}
}

func bindWith(h func(*fiber.Ctx, string, string) error, model, other string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h(c, model, other)
	}
}
