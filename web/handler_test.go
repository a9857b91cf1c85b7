package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/admin/schema"
	"github.com/ichaly/auja/factory"
	"github.com/ichaly/auja/router"
	"github.com/ichaly/auja/std"
	"github.com/ichaly/auja/utl"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type resource struct {
	Type  string `json:"type"`
	Items []struct {
		Link struct {
			Text   string `json:"text"`
			Target string `json:"target"`
			Order  int    `json:"order"`
		} `json:"link"`
	} `json:"items"`
	Paging *struct {
		Next string `json:"next"`
	} `json:"paging"`
}

func (my resource) texts() []string {
	out := make([]string, 0, len(my.Items))
	for _, i := range my.Items {
		out = append(out, i.Link.Text)
	}
	return out
}

type HandlerSuite struct {
	suite.Suite
	db  *gorm.DB
	app *fiber.App
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (my *HandlerSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file:web_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	my.Require().NoError(err)
	sqlDB, err := db.DB()
	my.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	for _, sql := range []string{
		`DROP TABLE IF EXISTS countries`, `DROP TABLE IF EXISTS clubs`, `DROP TABLE IF EXISTS teams`,
		`DROP TABLE IF EXISTS tags`, `DROP TABLE IF EXISTS club_tag`,
		`CREATE TABLE countries (id integer primary key autoincrement, name varchar(255))`,
		`CREATE TABLE clubs (id integer primary key autoincrement, name varchar(255), country_id integer, password varchar(255))`,
		`CREATE TABLE teams (id integer primary key autoincrement, title varchar(255), club_id integer)`,
		`CREATE TABLE tags (id integer primary key autoincrement, name varchar(255))`,
		`CREATE TABLE club_tag (club_id integer, tag_id integer)`,
		`INSERT INTO countries (id, name) VALUES (1, 'Spain'), (2, 'Italy'), (3, 'Portugal')`,
		`INSERT INTO clubs (id, name, country_id) VALUES (1, 'Barcelona', 1), (2, 'Madrid', 1), (3, 'Milan', 2)`,
		`INSERT INTO teams (id, title, club_id) VALUES (1, 'Barcelona B', 1)`,
		`INSERT INTO tags (id, name) VALUES (1, 'big')`,
		`INSERT INTO club_tag (club_id, tag_id) VALUES (1, 1), (3, 1)`,
	} {
		my.Require().NoError(db.Exec(sql).Error)
	}
	my.db = db

	cfg := &admin.Config{
		Title: "Admin", Prefix: "/admin", PageSize: 2, Authenticated: true, Username: "root",
		HiddenFields: []string{"password"},
	}
	c := admin.NewConfigurator(schema.NewGormProvider(db, nil))
	my.Require().NoError(c.Configure(context.Background(), []string{"Country", "Club", "Team", "Tag"}))

	r := router.NewRouter(cfg.Prefix)
	t := factory.NewTranslator(cfg)
	h := NewHandler(cfg, db, c, r,
		factory.NewMenuFactory(c, r, factory.NewResourceItemFactory(c, r), t),
		factory.NewResourceItemsFactory(c, r),
		factory.NewPageFactory(c, r, factory.NewFormItemFactory(cfg, t), t),
		factory.NewMainFactory(c, r, t),
		factory.NewAuthenticationFormFactory(t),
	)
	my.app = std.NewFiber(&std.Config{})
	std.Mount(my.app, h)
}

func (my *HandlerSuite) request(method, path, body string) (int, []byte) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := my.app.Test(req)
	my.Require().NoError(err)
	data, err := io.ReadAll(resp.Body)
	my.Require().NoError(err)
	return resp.StatusCode, data
}

func (my *HandlerSuite) items(path string) resource {
	code, data := my.request(http.MethodGet, path, "")
	my.Require().Equal(http.StatusOK, code, string(data))
	var out resource
	my.Require().NoError(utl.Unmarshal(data, &out))
	my.Equal("items", out.Type)
	return out
}

func (my *HandlerSuite) TestMain() {
	code, data := my.request(http.MethodGet, "/admin/", "")
	my.Require().Equal(http.StatusOK, code)

	var out struct {
		Main struct {
			Title    string `json:"title"`
			Username string `json:"username"`
			Items    []struct {
				Item struct {
					Title  string `json:"title"`
					Target string `json:"target"`
				} `json:"item"`
			} `json:"items"`
		} `json:"main"`
	}
	my.Require().NoError(utl.Unmarshal(data, &out))
	my.Equal("Admin", out.Main.Title)
	my.Equal("root", out.Main.Username)
	my.Require().Len(out.Main.Items, 4)
	my.Equal("/admin/countries/menu", out.Main.Items[0].Item.Target)
}

func (my *HandlerSuite) TestIndex() {
	out := my.items("/admin/countries/index")
	my.Equal([]string{"Spain", "Italy"}, out.texts())
	my.Equal("/admin/countries/1/menu", out.Items[0].Link.Target)
	my.Require().NotNil(out.Paging)
	my.Equal("/admin/countries/index?page=2", out.Paging.Next)

	out = my.items("/admin/countries/index?page=2")
	my.Equal([]string{"Portugal"}, out.texts())
	my.Equal(2, out.Items[0].Link.Order)
	my.Nil(out.Paging)

	out = my.items("/admin/countries/index?q=tal")
	my.Equal([]string{"Italy"}, out.texts())

	// 搜索词在下一页地址中被转义
	my.Require().NoError(my.db.Exec(`INSERT INTO countries (name) VALUES ('Trinidad & Tobago'), ('Antigua & Barbuda'), ('Bosnia & Herzegovina')`).Error)
	out = my.items("/admin/countries/index?q=" + url.QueryEscape("& "))
	my.Equal([]string{"Trinidad & Tobago", "Antigua & Barbuda"}, out.texts())
	my.Require().NotNil(out.Paging)
	my.Equal("/admin/countries/index?q=%26+&page=2", out.Paging.Next)
	out = my.items(out.Paging.Next)
	my.Equal([]string{"Bosnia & Herzegovina"}, out.texts())

	// 无一对多关联的模型直接指向编辑页
	out = my.items("/admin/teams/index")
	my.Equal("/admin/teams/1/edit", out.Items[0].Link.Target)
}

func (my *HandlerSuite) TestAssociation() {
	my.Equal([]string{"Barcelona", "Madrid"}, my.items("/admin/countries/1/clubs").texts())
	my.Equal([]string{"Barcelona B"}, my.items("/admin/clubs/1/teams").texts())
	my.Equal([]string{"Barcelona"}, my.items("/admin/teams/1/clubs").texts())
	my.Equal([]string{"Barcelona", "Milan"}, my.items("/admin/tags/1/clubs").texts())
}

func (my *HandlerSuite) TestMenus() {
	code, data := my.request(http.MethodGet, "/admin/countries/menu", "")
	my.Equal(http.StatusOK, code)
	my.Contains(string(data), `"target":"/admin/countries/create"`)

	code, data = my.request(http.MethodGet, "/admin/countries/1/menu", "")
	my.Equal(http.StatusOK, code)
	my.Contains(string(data), `"target":"/admin/countries/1/clubs"`)

	code, data = my.request(http.MethodGet, "/admin/clubs/1/teams/menu", "")
	my.Equal(http.StatusOK, code)
	my.Contains(string(data), `"target":"/admin/clubs/1/teams/create"`)
}

func (my *HandlerSuite) TestPages() {
	code, data := my.request(http.MethodGet, "/admin/clubs/create", "")
	my.Equal(http.StatusOK, code)
	my.Contains(string(data), `"text":"Create Club"`)

	code, data = my.request(http.MethodGet, "/admin/clubs/1/edit", "")
	my.Equal(http.StatusOK, code)
	my.Contains(string(data), `"text":"Edit Barcelona"`)
	my.Contains(string(data), `"action":"/admin/clubs/1"`)

	code, _ = my.request(http.MethodGet, "/admin/clubs/99/edit", "")
	my.Equal(http.StatusNotFound, code)

	code, data = my.request(http.MethodGet, "/admin/clubs/1", "")
	my.Equal(http.StatusOK, code)
	my.Contains(string(data), `"name":"Barcelona"`)
}

func (my *HandlerSuite) TestWrite() {
	code, _ := my.request(http.MethodPost, "/admin/countries", `{"name":"France","bogus":1}`)
	my.Equal(http.StatusCreated, code)
	var count int64
	my.Require().NoError(my.db.Table("countries").Where("name = ?", "France").Count(&count).Error)
	my.EqualValues(1, count)

	code, _ = my.request(http.MethodPost, "/admin/countries", `{"bogus":1}`)
	my.Equal(http.StatusBadRequest, code)

	code, _ = my.request(http.MethodPut, "/admin/countries/1", `{"name":"España"}`)
	my.Equal(http.StatusOK, code)
	var name string
	my.Require().NoError(my.db.Table("countries").Select("name").Where("id = ?", 1).Scan(&name).Error)
	my.Equal("España", name)

	code, _ = my.request(http.MethodPut, "/admin/countries/99", `{"name":"Nowhere"}`)
	my.Equal(http.StatusNotFound, code)

	code, _ = my.request(http.MethodDelete, "/admin/countries/3", "")
	my.Equal(http.StatusNoContent, code)
	code, _ = my.request(http.MethodDelete, "/admin/countries/3", "")
	my.Equal(http.StatusNotFound, code)
}
