// Package persistence records key generation results in a relational catalog.
// GORM is the ORM layer; SQLite and PostgreSQL are supported.
package persistence
