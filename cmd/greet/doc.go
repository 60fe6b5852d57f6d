// Command greet prints a greeting for a user, wiring its dependencies through
// a luckydep registry.
//
// Usage:
//
//	greet --records records.yaml [--env .env] [--prefix-var GREET_PREFIX] [--stats] [-v] USER_ID
//
// The records file maps user ids to names:
//
//	users:
//	  7: Alice
//	  3: Bob
//
// The greeting prefix is read from the variable named by --prefix-var, looked up
// in the process environment first and then in the --env dotenv files. It
// defaults to "Hi".
//
// Every piece (environment, records, store, prefix, service) is a provider in
// the registry and is only read or built when the service asks for it. With -v
// the registry logs each registration and resolution; with --stats the
// resolution counters are printed after the greeting.
package main
