/*
Package config holds Gradus's ambient settings: trace verbosity, the
Factory's retry budget, and a terminal pool size (loaded, but not used by
the composition step, which has a fixed pool of its own). Settings load from an optional TOML file
(github.com/BurntSushi/toml, as internal/tqw unmarshals world data in the
teacher's sibling repo) via Load, layered over built-in defaults from
Default. cmd/gradus wires the config file in with its --config flag;
--retries and --trace-level override the loaded RetryBudget and
TraceLevel whenever the caller passes them explicitly, taking precedence
over both the file and the built-in defaults.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package config
