package domain

import "strings"

// Address is a delivery address owned by the address service. The storefront
// keeps a fetched snapshot and a selected cursor only; creation and mutation
// are delegated to the address service entirely.
type Address struct {
	ID      string `json:"id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// DisplayLine renders the address the way the storefront shows it.
func (a Address) DisplayLine() string {
	return strings.Join([]string{a.Street, a.City, a.State, a.Country}, ", ")
}
