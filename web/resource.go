package web

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/iancoleman/strcase"
	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/factory"
	"github.com/ichaly/auja/router"
	"github.com/ichaly/auja/utl"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func foreignKey(m *admin.Model) string {
	return strcase.ToSnake(m.Name) + "_id"
}

func (my *Handler) find(c *fiber.Ctx, m *admin.Model, id string) (factory.Row, error) {
	row := factory.Row{}
	res := my.db.WithContext(c.UserContext()).Table(m.Table).Where("id = ?", id).Limit(1).Find(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "记录不存在")
	}
	return row, nil
}

// Index 模型条目列表，支持q按显示列模糊搜索与page分页
func (my *Handler) Index(c *fiber.Ctx, name string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	cfg, err := my.configurator.Config(m, nil)
	if err != nil {
		return err
	}
	target := my.router.URL(my.router.IndexName(m.Name))
	query := my.db.WithContext(c.UserContext()).Table(m.Table)
	if q := c.Query("q"); q != "" && cfg.DisplayField != "" {
		query = query.Where(clause.Like{Column: clause.Column{Name: cfg.DisplayField}, Value: "%" + q + "%"})
		target = router.Query(target, "q", url.QueryEscape(q))
	}
	return my.list(c, m, query, target)
}

// Association 某条记录的关联条目
func (my *Handler) Association(c *fiber.Ctx, name, other string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	o, err := my.model(other)
	if err != nil {
		return err
	}
	relations, err := my.configurator.RelationsForModel(m)
	if err != nil {
		return err
	}
	rel, ok := lo.Find(relations, func(r *admin.Relation) bool { return r.Right.Name == o.Name })
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s与%s之间没有关系", m.Name, o.Name))
	}

	id := c.Params("id")
	db := my.db.WithContext(c.UserContext())
	query := db.Table(o.Table)
	switch rel.Kind {
	case admin.HasMany:
		query = query.Where(clause.Eq{Column: clause.Column{Name: foreignKey(m)}, Value: id})
	case admin.HasAndBelongsToMany:
		sub := db.Table(admin.PivotTable(m.Name, o.Name)).Select(foreignKey(o)).Where(clause.Eq{Column: clause.Column{Name: foreignKey(m)}, Value: id})
		query = query.Where("id IN (?)", sub)
	case admin.BelongsTo:
		sub := db.Table(m.Table).Select(foreignKey(o)).Where("id = ?", id)
		query = query.Where("id IN (?)", sub)
	}
	return my.list(c, o, query, my.router.URL(my.router.AssociationName(m.Name, o.Name), id))
}

func (my *Handler) list(c *fiber.Ctx, m *admin.Model, query *gorm.DB, target string) error {
	page := max(c.QueryInt("page", 1), 1)
	size := lo.Ternary(my.cfg.PageSize > 0, my.cfg.PageSize, 25)
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}
	if _, ok := m.Column("id"); ok {
		query = query.Order("id")
	}
	rows := make([]factory.Row, 0)
	if err := query.Limit(size).Offset((page - 1) * size).Find(&rows).Error; err != nil {
		return err
	}
	res, err := my.items.Create(m, rows, factory.NextPage(target, page, size, total), (page-1)*size, nil)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// values 解析请求体中属于模型的列，忽略id
func (my *Handler) values(c *fiber.Ctx, m *admin.Model) (map[string]any, error) {
	body := map[string]any{}
	if c.Is("json") {
		if err := utl.Unmarshal(c.Body(), &body); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	} else {
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			body[string(k)] = string(v)
		})
	}
	values := lo.PickBy(body, func(k string, _ any) bool {
		_, ok := m.Column(k)
		return ok && k != "id"
	})
	if len(values) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "没有可保存的字段")
	}
	return values, nil
}

func (my *Handler) Store(c *fiber.Ctx, name string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	values, err := my.values(c, m)
	if err != nil {
		return err
	}
	if err := my.db.WithContext(c.UserContext()).Table(m.Table).Create(values).Error; err != nil {
		return err
	}
	my.logger.Info().Str("model", m.Name).Msg("新增记录")
	return c.Status(fiber.StatusCreated).JSON(values)
}

func (my *Handler) Update(c *fiber.Ctx, name string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	values, err := my.values(c, m)
	if err != nil {
		return err
	}
	res := my.db.WithContext(c.UserContext()).Table(m.Table).Where("id = ?", c.Params("id")).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "记录不存在")
	}
	return c.JSON(values)
}

func (my *Handler) Delete(c *fiber.Ctx, name string) error {
	m, err := my.model(name)
	if err != nil {
		return err
	}
	res := my.db.WithContext(c.UserContext()).Exec("DELETE FROM ? WHERE id = ?", clause.Table{Name: m.Table}, c.Params("id"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "记录不存在")
	}
	my.logger.Info().Str("model", m.Name).Str("id", c.Params("id")).Msg("删除记录")
	return c.SendStatus(fiber.StatusNoContent)
}
