// Package plot turns expressions into sampled curves.
//
//   - [SelectDomain]: picks the x interval for an expression
//   - [Sample]: evaluates an expression on an evenly spaced grid
//   - [Registry]: ordered curve collection with cyclic palette colors
package plot
