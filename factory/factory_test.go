package factory

import (
	"context"
	"testing"

	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/admin/schema"
	"github.com/ichaly/auja/router"
	"github.com/ichaly/auja/ui"
	"github.com/ichaly/auja/utl"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

func col(name, typ string) schema.Column {
	return schema.Column{Name: name, Type: typ}
}

type FactorySuite struct {
	suite.Suite
	c      *admin.Configurator
	r      *router.Router
	t      Translator
	menu   *MenuFactory
	items  *ResourceItemsFactory
	page   *PageFactory
	main   *MainFactory
	models map[string]*admin.Model
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (my *FactorySuite) SetupTest() {
	snapshot := &schema.Snapshot{Tables: map[string][]schema.Column{
		"countries": {col("id", schema.Integer), col("name", schema.String)},
		"clubs": {
			col("id", schema.Integer), col("name", schema.String), col("country_id", schema.Integer),
			col("founded", schema.Date), col("password", schema.String), col("rating", schema.Decimal),
			col("active", schema.Boolean), col("notes", schema.Text),
		},
		"teams":   {col("id", schema.Integer), col("title", schema.String), col("club_id", schema.Integer)},
		"players": {col("id", schema.Integer), col("name", schema.String), col("club_id", schema.Integer)},
	}}
	my.c = admin.NewConfigurator(snapshot, admin.WithOverrides(map[string]*admin.ModelConfig{
		"Club": {Icon: "ion-trophy"},
		"Team": {IncludeInMain: lo.ToPtr(false), Searchable: lo.ToPtr(false)},
	}))
	my.Require().NoError(my.c.Configure(context.Background(), []string{"Country", "Club", "Team", "Player"}))

	my.models = make(map[string]*admin.Model)
	for _, name := range []string{"Country", "Club", "Team", "Player"} {
		m, err := my.c.Model(name)
		my.Require().NoError(err)
		my.models[name] = m
	}

	cfg := &admin.Config{HiddenFields: []string{"password"}}
	my.r = router.NewRouter("/admin")
	my.t = NewTranslator(cfg)
	my.menu = NewMenuFactory(my.c, my.r, NewResourceItemFactory(my.c, my.r), my.t)
	my.items = NewResourceItemsFactory(my.c, my.r)
	my.page = NewPageFactory(my.c, my.r, NewFormItemFactory(cfg, my.t), my.t)
	my.main = NewMainFactory(my.c, my.r, my.t)
}

func (my *FactorySuite) TestTranslator() {
	t := NewTranslator(&admin.Config{Translations: map[string]string{"Add": "新增"}})
	my.Equal("新增", t.Trans("Add"))
	my.Equal("Club", t.Trans("Club"))
}

func (my *FactorySuite) TestIndexMenu() {
	menu, err := my.menu.Index(my.models["Club"], nil)
	my.Require().NoError(err)

	data, err := utl.Marshal(menu)
	my.Require().NoError(err)
	my.JSONEq(`{"type":"menu","menu":{"menu":[
		{"type":"link","link":{"text":"Add","target":"/admin/clubs/create","icon":"ion-plus","order":0}},
		{"type":"spacer","spacer":{"text":"Club"}},
		{"type":"resource","resource":{"target":"/admin/clubs/index","properties":{"searchable":{"target":"/admin/clubs/index?q=%s"}}}}
	]}}`, string(data))

	menu, err = my.menu.Index(my.models["Team"], nil)
	my.Require().NoError(err)
	resource := menu.Items[2].(*ui.ResourceMenuItem)
	my.Empty(resource.Properties)

	menu, err = my.menu.Index(my.models["Team"], &admin.ModelConfig{Searchable: lo.ToPtr(true)})
	my.Require().NoError(err)
	my.Len(menu.Items[2].(*ui.ResourceMenuItem).Properties, 1)
}

func (my *FactorySuite) TestShowMenu() {
	// 无关联时退回首页菜单
	menu, err := my.menu.Show(my.models["Player"], 1, nil)
	my.Require().NoError(err)
	my.Equal("/admin/players/create", menu.Items[0].(*ui.LinkMenuItem).Target)

	// 单个关联
	menu, err = my.menu.Show(my.models["Country"], 3, nil)
	my.Require().NoError(err)
	my.Require().Len(menu.Items, 4)
	my.Equal(&ui.LinkMenuItem{Text: "Edit", Icon: ui.IconEdit, Target: "/admin/countries/3/edit"}, menu.Items[0])
	my.Equal(&ui.SpacerMenuItem{Text: "Clubs"}, menu.Items[1])
	my.Equal(&ui.LinkMenuItem{Text: "Add Club", Icon: ui.IconPlus, Target: "/admin/countries/3/clubs/create"}, menu.Items[2])
	my.Equal(&ui.ResourceMenuItem{Target: "/admin/countries/3/clubs"}, menu.Items[3])

	// 多个关联
	menu, err = my.menu.Show(my.models["Club"], 7, nil)
	my.Require().NoError(err)
	my.Require().Len(menu.Items, 4)
	my.Equal(&ui.LinkMenuItem{Text: "Edit", Icon: ui.IconEdit, Target: "/admin/clubs/7/edit"}, menu.Items[0])
	my.Equal(&ui.SpacerMenuItem{Text: "Properties"}, menu.Items[1])
	targets := lo.Map(menu.Items[2:], func(c ui.Component, _ int) string { return c.(*ui.LinkMenuItem).Target })
	my.ElementsMatch([]string{"/admin/clubs/7/teams/menu", "/admin/clubs/7/players/menu"}, targets)
}

func (my *FactorySuite) TestAssociationMenu() {
	menu := my.menu.Association(my.models["Club"], 7, "Player")
	my.Require().Len(menu.Items, 3)
	my.Equal(&ui.LinkMenuItem{Text: "Add Player", Icon: ui.IconPlus, Target: "/admin/clubs/7/players/create"}, menu.Items[0])
	my.Equal(&ui.SpacerMenuItem{Text: "Players"}, menu.Items[1])
	my.Equal(&ui.ResourceMenuItem{Target: "/admin/clubs/7/players"}, menu.Items[2])
}

func (my *FactorySuite) TestResourceItems() {
	res, err := my.items.Create(my.models["Country"], nil, "", 0, nil)
	my.Require().NoError(err)
	data, err := utl.Marshal(res)
	my.Require().NoError(err)
	my.JSONEq(`{"type":"items","items":[]}`, string(data))

	rows := []Row{{"id": 1, "name": "Spain"}, {"id": 2, "name": []byte("Italy")}}
	res, err = my.items.Create(my.models["Country"], rows, "/admin/countries/index?page=2", 10, nil)
	my.Require().NoError(err)
	my.Equal([]*ui.LinkMenuItem{
		{Text: "Spain", Target: "/admin/countries/1/menu", Order: 10},
		{Text: "Italy", Target: "/admin/countries/2/menu", Order: 11},
	}, res.Items)
	my.Equal("/admin/countries/index?page=2", res.NextPageURL)

	res, err = my.items.Create(my.models["Player"], []Row{{"id": 5, "name": "Xavi"}}, "", 0, nil)
	my.Require().NoError(err)
	my.Equal("/admin/players/5/edit", res.Items[0].Target)

	res, err = my.items.Create(my.models["Club"], []Row{{"id": 4, "name": "Ajax"}}, "", 0, nil)
	my.Require().NoError(err)
	my.Equal("ion-trophy", res.Items[0].Icon)

	my.Equal("/admin/countries/index?page=2", NextPage("/admin/countries/index", 1, 2, 5))
	my.Equal("/admin/countries/index?q=a&page=3", NextPage("/admin/countries/index?q=a", 2, 2, 5))
	my.Empty(NextPage("/admin/countries/index", 3, 2, 5))
	my.Empty(NextPage("/admin/countries/index", 1, 0, 5))
}

func (my *FactorySuite) TestCreatePage() {
	page, err := my.page.Create(my.models["Club"], nil, nil)
	my.Require().NoError(err)
	my.Require().Len(page.Components, 2)

	header := page.Components[0].(*ui.PageHeader)
	my.Equal("Create Club", header.Text)
	my.Empty(header.Buttons)

	form := page.Components[1].(*ui.Form)
	my.Equal("/admin/clubs", form.Action)
	my.Equal("POST", form.Method)
	kinds := lo.Map(form.Items, func(i *ui.FormItem, _ int) string { return i.Name + ":" + i.Kind })
	my.Equal([]string{
		"name:text", "country_id:integer", "founded:date", "password:password",
		"rating:number", "active:checkbox", "notes:textarea", ":submit",
	}, kinds)
	my.Equal("Submit", form.Items[len(form.Items)-1].Text)
}

func (my *FactorySuite) TestEditPage() {
	row := Row{"id": 3, "name": "Barça", "password": "secret", "founded": "1899-11-29"}
	page, err := my.page.Create(my.models["Club"], row, &admin.ModelConfig{VisibleFields: []string{"id", "name", "password", "founded"}})
	my.Require().NoError(err)

	header := page.Components[0].(*ui.PageHeader)
	my.Equal("Edit Barça", header.Text)
	my.Equal([]*ui.Button{{
		Text: "Delete", Target: "/admin/clubs/3", Method: "delete", ConfirmationMessage: "Are you sure?",
	}}, header.Buttons)

	form := page.Components[1].(*ui.Form)
	my.Equal("/admin/clubs/3", form.Action)
	my.Equal("PUT", form.Method)
	my.Require().Len(form.Items, 4)
	my.Equal("Barça", form.Items[0].Value)
	my.Nil(form.Items[1].Value)
	my.Equal("1899-11-29", form.Items[2].Value)

	// 显示字段为空时使用模型名
	page, err = my.page.Create(my.models["Club"], Row{"id": 3}, nil)
	my.Require().NoError(err)
	my.Equal("Edit Club", page.Components[0].(*ui.PageHeader).Text)

	// 没有id的行按新增处理
	page, err = my.page.Create(my.models["Club"], Row{"name": "Barça"}, nil)
	my.Require().NoError(err)
	my.Equal("Create Club", page.Components[0].(*ui.PageHeader).Text)
	form = page.Components[1].(*ui.Form)
	my.Equal("/admin/clubs", form.Action)
	my.Equal("POST", form.Method)
	my.Equal("Barça", form.Items[0].Value)
}

func (my *FactorySuite) TestMain() {
	auth := NewAuthenticationFormFactory(my.t).Create("/admin/login")
	main, err := my.main.Create(MainOptions{
		Title:         "Admin",
		Authenticated: true,
		Username:      "root",
		LogoutTarget:  "/admin/logout",
		Authenticate:  auth,
		Items:         []*ui.Item{{Title: "Docs", Target: "/docs"}},
		SmartInclude:  true,
	})
	my.Require().NoError(err)

	my.Equal([]*ui.Button{{Text: "Logout", Target: "/admin/logout"}}, main.Buttons)
	my.Equal([]*ui.Item{
		{Title: "Docs", Target: "/docs"},
		{Title: "Country", Target: "/admin/countries/menu"},
		{Title: "Club", Icon: "ion-trophy", Target: "/admin/clubs/menu"},
		{Title: "Player", Target: "/admin/players/menu"},
	}, main.Items)

	data, err := utl.Marshal(main.AuthenticationForm)
	my.Require().NoError(err)
	my.JSONEq(`{"type":"form","form":{"action":"/admin/login","method":"POST","items":[
		{"type":"text","text":{"name":"username","label":"Username"}},
		{"type":"password","password":{"name":"password","label":"Password"}},
		{"type":"submit","submit":{"text":"Login"}}
	]}}`, string(data))

	main, err = my.main.Create(MainOptions{Title: "Admin"})
	my.Require().NoError(err)
	my.Empty(main.Items)
	my.Empty(main.Buttons)

	_, err = NewMainFactory(admin.NewConfigurator(&schema.Snapshot{}), my.r, my.t).Create(MainOptions{SmartInclude: true})
	my.ErrorIs(err, admin.ErrNotConfigured)
}
