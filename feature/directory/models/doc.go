// Package models defines the wire types of the directory HTTP surface.
package models
