package factory

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/router"
	"github.com/ichaly/auja/ui"
)

// MainOptions 主界面参数，LogoutTarget为空时不显示退出按钮
type MainOptions struct {
	Title         string
	Authenticated bool
	Username      string
	LogoutTarget  string
	Authenticate  *ui.Form
	Override      *admin.ModelConfig
	Items         []*ui.Item
	SmartInclude  bool
}

// MainFactory 生成主界面
type MainFactory struct {
	configurator *admin.Configurator
	router       *router.Router
	translator   Translator
}

func NewMainFactory(c *admin.Configurator, r *router.Router, t Translator) *MainFactory {
	return &MainFactory{configurator: c, router: r, translator: t}
}

func (my *MainFactory) Create(o MainOptions) (*ui.Main, error) {
	main := &ui.Main{
		Title:              o.Title,
		Authenticated:      o.Authenticated,
		Username:           o.Username,
		AuthenticationForm: o.Authenticate,
	}
	if o.LogoutTarget != "" {
		main.AddButton(&ui.Button{Text: my.translator.Trans("Logout"), Target: o.LogoutTarget})
	}
	for _, item := range o.Items {
		main.AddItem(item)
	}
	if !o.SmartInclude {
		return main, nil
	}

	models, err := my.configurator.Models()
	if err != nil {
		return nil, err
	}
	for _, m := range models {
		c, err := my.configurator.Config(m, o.Override)
		if err != nil {
			return nil, err
		}
		if !c.IsIncludedInMain() {
			continue
		}
		main.AddItem(&ui.Item{
			Title:  my.translator.Trans(m.Name),
			Icon:   c.Icon,
			Target: my.router.URL(my.router.MenuName(m.Name)),
		})
	}
	return main, nil
}

// AuthenticationFormFactory 生成登录表单
type AuthenticationFormFactory struct {
	translator Translator
}

func NewAuthenticationFormFactory(t Translator) *AuthenticationFormFactory {
	return &AuthenticationFormFactory{translator: t}
}

func (my *AuthenticationFormFactory) Create(target string) *ui.Form {
	form := &ui.Form{Action: target, Method: fiber.MethodPost}

	username := ui.NewFormItem(ui.TextItem)
	username.Name, username.Label = "username", my.translator.Trans("Username")
	form.AddItem(username)

	password := ui.NewFormItem(ui.PasswordItem)
	password.Name, password.Label = "password", my.translator.Trans("Password")
	form.AddItem(password)

	submit := ui.NewFormItem(ui.SubmitItem)
	submit.Text = my.translator.Trans("Login")
	form.AddItem(submit)
	return form
}
