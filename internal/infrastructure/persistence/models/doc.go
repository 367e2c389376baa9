// Package models contains GORM database models for the persistence layer.
// They are kept apart from the domain types so the domain stays free of ORM tags.
package models
