package router

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/ichaly/auja/admin"
	"github.com/jinzhu/inflection"
)

const namePrefix = "auja"

// Router 生成管理后台的路由名称与URL，名称格式为 auja.<复数小写模型名>.<动作>
type Router struct {
	prefix string
	mu     sync.RWMutex
	paths  map[string]string
}

func NewRouter(prefix string) *Router {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	return &Router{prefix: prefix, paths: make(map[string]string)}
}

// Prefix 路由前缀，根路径时为空串
func (my *Router) Prefix() string {
	return my.prefix
}

// Segment 模型在URL与路由名中的片段，BlogPost得到blogposts
func Segment(model string) string {
	return strings.ToLower(inflection.Plural(model))
}

func (my *Router) name(model, action, path string) string {
	seg := Segment(model)
	name := namePrefix + "." + seg
	if action != "" {
		name += "." + action
	}
	my.mu.Lock()
	my.paths[name] = "/" + seg + path
	my.mu.Unlock()
	return name
}

func (my *Router) IndexName(model string) string { return my.name(model, "index", "/index") }

func (my *Router) MenuName(model string) string { return my.name(model, "menu", "/menu") }

func (my *Router) ShowMenuName(model string) string {
	return my.name(model, "show.menu", "/:id/menu")
}

func (my *Router) CreateName(model string) string { return my.name(model, "create", "/create") }

func (my *Router) StoreName(model string) string { return my.name(model, "store", "") }

func (my *Router) ShowName(model string) string { return my.name(model, "show", "/:id") }

func (my *Router) EditName(model string) string { return my.name(model, "edit", "/:id/edit") }

func (my *Router) UpdateName(model string) string { return my.name(model, "update", "/:id") }

func (my *Router) DeleteName(model string) string { return my.name(model, "delete", "/:id") }

func (my *Router) AssociationName(model, other string) string {
	return my.name(model, Segment(other), "/:id/"+Segment(other))
}

func (my *Router) AssociationMenuName(model, other string) string {
	return my.name(model, Segment(other)+".menu", "/:id/"+Segment(other)+"/menu")
}

func (my *Router) CreateAssociationName(model, other string) string {
	return my.name(model, Segment(other)+".create", "/:id/"+Segment(other)+"/create")
}

// Path 路由名对应的相对路径模板，不含前缀
func (my *Router) Path(name string) (string, bool) {
	my.mu.RLock()
	defer my.mu.RUnlock()
	p, ok := my.paths[name]
	return p, ok
}

// URL 生成带前缀的地址，:id依次由params替换，未知名称返回空串
func (my *Router) URL(name string, params ...any) string {
	p, ok := my.Path(name)
	if !ok {
		return ""
	}
	for _, v := range params {
		p = strings.Replace(p, ":id", url.PathEscape(fmt.Sprint(v)), 1)
	}
	return my.prefix + p
}

// Query 在地址后追加查询参数，值原样保留以支持%s占位
func Query(target string, key string, value any) string {
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + key + "=" + fmt.Sprint(value)
}

// New 按管理后台配置的前缀创建Router
func New(c *admin.Config) *Router {
	return NewRouter(c.Prefix)
}
