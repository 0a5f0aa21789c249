// Package model contains the database models for the blog backend.
package model
