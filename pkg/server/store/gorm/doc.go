// Package gorm implements the store interfaces using GORM and PostgreSQL.
package gorm
