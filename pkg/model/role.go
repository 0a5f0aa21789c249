package model

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform upper -json -sql -output role_enumer.go

// Role is the access level of a user. Only RoleAdmin may mutate posts.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)
