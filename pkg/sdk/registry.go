package sdk

import (
	"fmt"
	"sync"
)

// Registry is the typed module table a host engine fills before startup.
// Registry 是宿主引擎在启动前填充的类型化模块表。
type Registry struct {
	mu        sync.RWMutex
	factories [moduleCount]Factory
}

// NewRegistry creates an empty registry.
// NewRegistry 创建一个空的注册表。
func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds a factory to a module, replacing any previous binding.
// Register 为模块绑定工厂函数，替换之前的绑定。
func (r *Registry) Register(id ModuleID, f Factory) error {
	if !id.Valid() {
		return fmt.Errorf("unknown module id %d", id)
	}
	if f == nil {
		return fmt.Errorf("nil factory for module %s", id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = f
	return nil
}

// RegisterByName binds a factory by registry name, for hosts that keep string keys.
func (r *Registry) RegisterByName(name string, f Factory) error {
	id, ok := ParseModuleID(name)
	if !ok {
		return fmt.Errorf("unknown module name %q", name)
	}
	return r.Register(id, f)
}

// Lookup returns the factory bound to id.
// Lookup 返回绑定到 id 的工厂函数。
func (r *Registry) Lookup(id ModuleID) (Factory, bool) {
	if r == nil || !id.Valid() {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	f := r.factories[id]
	return f, f != nil
}

// Registered lists the modules that currently have a factory, in enum order.
func (r *Registry) Registered() []ModuleID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []ModuleID
	for i, f := range r.factories {
		if f != nil {
			ids = append(ids, ModuleID(i))
		}
	}
	return ids
}
