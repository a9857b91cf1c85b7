package factory

import (
	"fmt"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/gofiber/fiber/v2"
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/admin/schema"
	"github.com/ichaly/auja/router"
	"github.com/ichaly/auja/ui"
	"github.com/samber/lo"
)

// 表单中不出现的列
var forbiddenColumns = []string{idField}

// FormItemFactory 按列类型生成表单项
type FormItemFactory struct {
	hidden     []string
	translator Translator
}

func NewFormItemFactory(c *admin.Config, t Translator) *FormItemFactory {
	return &FormItemFactory{hidden: c.HiddenFields, translator: t}
}

// Kind 列类型对应的表单项类型，隐藏列一律为密码框
func Kind(typ string, hidden bool) string {
	if hidden {
		return ui.PasswordItem
	}
	switch typ {
	case schema.Text, schema.Array, schema.SimpleArray, schema.JsonArray, schema.Object, schema.Blob:
		return ui.TextAreaItem
	case schema.Integer, schema.SmallInt, schema.BigInt:
		return ui.IntegerItem
	case schema.Decimal, schema.Float:
		return ui.NumberItem
	case schema.Boolean:
		return ui.CheckboxItem
	case schema.Date:
		return ui.DateItem
	case schema.DateTime, schema.DateTimeTz:
		return ui.DateTimeItem
	case schema.Time:
		return ui.TimeItem
	default:
		return ui.TextItem
	}
}

func (my *FormItemFactory) Create(column *admin.Column, row Row) *ui.FormItem {
	hidden := slice.Contain(my.hidden, column.Name)
	item := ui.NewFormItem(Kind(column.Type, hidden))
	item.Name = column.Name
	item.Label = my.translator.Trans(column.Name)
	if row != nil && !hidden {
		item.Value = row[column.Name]
	}
	return item
}

// PageFactory 生成新增与编辑页面
type PageFactory struct {
	configurator *admin.Configurator
	router       *router.Router
	form         *FormItemFactory
	translator   Translator
}

func NewPageFactory(c *admin.Configurator, r *router.Router, f *FormItemFactory, t Translator) *PageFactory {
	return &PageFactory{configurator: c, router: r, form: f, translator: t}
}

// Create row为nil时生成新增页，带id时生成编辑页
func (my *PageFactory) Create(model *admin.Model, row Row, override *admin.ModelConfig) (*ui.Page, error) {
	c, err := my.configurator.Config(model, override)
	if err != nil {
		return nil, err
	}

	header := &ui.PageHeader{Text: fmt.Sprintf("%s %s", my.translator.Trans("Create"), my.translator.Trans(model.Name))}
	action := my.router.URL(my.router.StoreName(model.Name))
	id, ok := idOf(row)
	if ok {
		title := text(row[c.DisplayField])
		if title == "" {
			title = my.translator.Trans(model.Name)
		}
		header.Text = fmt.Sprintf("%s %s", my.translator.Trans("Edit"), title)
		header.AddButton(&ui.Button{
			Text:                my.translator.Trans("Delete"),
			Target:              my.router.URL(my.router.DeleteName(model.Name), id),
			Method:              "delete",
			ConfirmationMessage: my.translator.Trans("Are you sure?"),
		})
		action = my.router.URL(my.router.UpdateName(model.Name), id)
	}

	form := &ui.Form{Action: action, Method: lo.Ternary(ok, fiber.MethodPut, fiber.MethodPost)}
	for _, name := range c.VisibleFields {
		if slice.Contain(forbiddenColumns, name) {
			continue
		}
		column, ok := model.Column(name)
		if !ok {
			column = &admin.Column{Name: name, Type: schema.String}
		}
		form.AddItem(my.form.Create(column, row))
	}
	submit := ui.NewFormItem(ui.SubmitItem)
	submit.Text = my.translator.Trans("Submit")
	form.AddItem(submit)

	page := &ui.Page{}
	page.AddComponent(header)
	page.AddComponent(form)
	return page, nil
}
