// Package gorm implements the store interfaces using GORM against Postgres.
package gorm
