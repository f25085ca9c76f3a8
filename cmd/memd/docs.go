package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           memd API
// @version         1.0
// @description     HTTP API for managing model memory: loading, reference counting, and LRU eviction under a byte budget.
//
// @contact.name   memd maintainers
// @contact.url    https://github.com/your-org/memd
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
