package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/factory"
	"github.com/ichaly/auja/log"
	"github.com/ichaly/auja/router"
	"gorm.io/gorm"
)

// Handler 以JSON输出界面描述的管理后台接口
type Handler struct {
	cfg          *admin.Config
	db           *gorm.DB
	configurator *admin.Configurator
	router       *router.Router
	menu         *factory.MenuFactory
	items        *factory.ResourceItemsFactory
	page         *factory.PageFactory
	main         *factory.MainFactory
	auth         *factory.AuthenticationFormFactory
	logger       *log.Logger
}

func NewHandler(
	cfg *admin.Config,
	db *gorm.DB,
	c *admin.Configurator,
	r *router.Router,
	menu *factory.MenuFactory,
	items *factory.ResourceItemsFactory,
	page *factory.PageFactory,
	main *factory.MainFactory,
	auth *factory.AuthenticationFormFactory,
) *Handler {
	return &Handler{
		cfg: cfg, db: db, configurator: c, router: r,
		menu: menu, items: items, page: page, main: main, auth: auth,
		logger: log.Default().Named("web"),
	}
}

func (my *Handler) Base() string {
	return my.router.Prefix()
}

// Init 注册主界面与全部已配置模型的路由
func (my *Handler) Init(r fiber.Router) {
	r.Get("/", my.Main)
	models, err := my.configurator.Models()
	if err != nil {
		my.logger.Error().Err(err).Msg("模型未配置，跳过路由注册")
		return
	}
	for _, m := range models {
		if err := my.router.Resource(r, my.configurator, router.ByName(m.Name), my); err != nil {
			my.logger.Error().Err(err).Str("model", m.Name).Msg("注册路由失败")
		}
	}
}

// Main 主界面，未登录时附带登录表单
func (my *Handler) Main(c *fiber.Ctx) error {
	o := factory.MainOptions{
		Title:         my.cfg.Title,
		Authenticated: my.cfg.Authenticated,
		SmartInclude:  true,
	}
	if my.cfg.Authenticated {
		o.Username = my.cfg.Username
		o.LogoutTarget = my.router.Prefix() + "/logout"
	} else {
		o.Authenticate = my.auth.Create(my.router.Prefix() + "/login")
	}
	main, err := my.main.Create(o)
	if err != nil {
		return err
	}
	return c.JSON(main)
}

func (my *Handler) model(name string) (*admin.Model, error) {
	m, err := my.configurator.Model(name)
	if errors.Is(err, admin.ErrModelNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return m, err
}

func (my *Handler) Menu(c *fiber.Ctx, name string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	if id := c.Params("id"); id != "" {
		menu, err := my.menu.Show(m, id, nil)
		if err != nil {
			return err
		}
		return c.JSON(menu)
	}
	menu, err := my.menu.Index(m, nil)
	if err != nil {
		return err
	}
	return c.JSON(menu)
}

func (my *Handler) AssociationMenu(c *fiber.Ctx, name, other string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	return c.JSON(my.menu.Association(m, c.Params("id"), other))
}

func (my *Handler) Create(c *fiber.Ctx, name string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	page, err := my.page.Create(m, nil, nil)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (my *Handler) CreateAssociation(c *fiber.Ctx, _, other string) error {
	return my.Create(c, other)
}

func (my *Handler) Edit(c *fiber.Ctx, name string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	row, err := my.find(c, m, c.Params("id"))
	if err != nil {
		return err
	}
	page, err := my.page.Create(m, row, nil)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (my *Handler) Show(c *fiber.Ctx, name string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	row, err := my.find(c, m, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(row)
}
