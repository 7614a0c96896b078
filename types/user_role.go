package types

import (
	"database/sql/driver"
	"fmt"
)

type UserRole string

const (
	RoleUser  UserRole = "ROLE_USER"
	RoleAdmin UserRole = "ROLE_ADMIN"
)

func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r UserRole) Value() (driver.Value, error) {
	if r == "" {
		return string(RoleUser), nil
	}
	if !r.Valid() {
		return nil, fmt.Errorf("unknown user role %q", string(r))
	}
	return string(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*r = RoleUser
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot convert %T to UserRole", value)
	}

	role := UserRole(raw)
	if !role.Valid() {
		return fmt.Errorf("unknown user role %q", raw)
	}
	*r = role
	return nil
}
