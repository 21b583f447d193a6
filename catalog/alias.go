package catalog

import "go.uber.org/zap"

// maxAliasHops bounds alias chains; wit-bindgen-go never nests deeper than
// one re-export per interface.
const maxAliasHops = 16

func (c *Catalog) addAlias(dir, name string, target TypeRef) {
	c.aliases[dir+"."+name] = target
}

// resolve follows alias chains from t.
func (c *Catalog) resolve(t TypeRef) TypeRef {
	for range maxAliasHops {
		n, ok := t.(Named)
		if !ok {
			return t
		}
		target, ok := c.aliases[n.Pkg+"."+n.Name]
		if !ok {
			return t
		}
		if tn, ok := target.(Named); ok {
			tn.Borrow = n.Borrow
			target = tn
		}
		t = target
	}
	Logger().Warn("alias chain too long", zap.String("type", t.Key()))
	return t
}

// resolveAliases rewrites every reference to a type alias into a
// reference to its target, across functions and type declarations.
func (c *Catalog) resolveAliases() {
	if len(c.aliases) == 0 {
		return
	}
	fix := func(t TypeRef) TypeRef {
		return mapRef(t, c.resolve)
	}
	for _, k := range c.funcOrder {
		for _, fn := range c.funcs[k].Funcs {
			if fn.Self != nil {
				fn.Self.Type = fix(fn.Self.Type)
			}
			for i := range fn.Params {
				fn.Params[i].Type = fix(fn.Params[i].Type)
			}
			fn.Result = fix(fn.Result)
		}
	}
	for _, d := range c.typeOrder {
		d.Under = fix(d.Under)
		for i := range d.Fields {
			d.Fields[i].Type = fix(d.Fields[i].Type)
		}
		for i := range d.Cases {
			d.Cases[i].Payload = fix(d.Cases[i].Payload)
		}
	}
}

// Alias returns the target of a type alias declared as name in dir.
func (c *Catalog) Alias(dir, name string) (TypeRef, bool) {
	t, ok := c.aliases[dir+"."+name]
	if !ok {
		return nil, false
	}
	return c.resolve(t), true
}
