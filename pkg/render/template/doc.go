// Package template defines the rendering seam between generators and
// template engines, with adapters under template/mustache and
// template/gotemplate.
package template
