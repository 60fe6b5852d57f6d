// Package source provides ready-made factories that read values from the
// process environment, dotenv files and YAML documents.
//
// The registry treats them like any other factory: nothing is read until the
// key is first invoked, and the result is cached from then on.
//
//	c := di.New()
//	di.Provide(c, source.LoadEnv(".env"))
//	di.ProvideNamed(c, "hello-prefix", source.EnvString("GREET_PREFIX", "Hi"))
//	di.Provide(c, source.YAML[Records]("records.yaml"))
package source
