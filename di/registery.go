package di

// Has reports whether key has a provider or a resolved value.
func (c *Container) Has(key Key) bool {
	key = key.normalize()
	c.reg.mu.RLock()
	defer c.reg.mu.RUnlock()
	_, hasProvider := c.reg.providers[key]
	_, hasValue := c.reg.instances[key]
	return hasProvider || hasValue
}

// Resolved reports whether key has been resolved.
func (c *Container) Resolved(key Key) bool {
	key = key.normalize()
	c.reg.mu.RLock()
	defer c.reg.mu.RUnlock()
	_, ok := c.reg.instances[key]
	return ok
}

// Lookup returns the resolved value for key without running any provider.
func (c *Container) Lookup(key Key) (any, bool) {
	key = key.normalize()
	c.reg.mu.RLock()
	defer c.reg.mu.RUnlock()
	v, ok := c.reg.instances[key]
	return v, ok
}

// Keys returns every registered key in deterministic order.
func (c *Container) Keys() []Key {
	c.reg.mu.RLock()
	keys := make([]Key, 0, len(c.reg.providers))
	for k := range c.reg.providers {
		keys = append(keys, k)
	}
	c.reg.mu.RUnlock()

	sortKeys(keys)
	return keys
}
