// Package site renders the component catalog as a static HTML documentation site.
//
// The listing is split into fixed-size pages linked by a bounded-ellipsis navigation bar,
// and every component gets its own page with the rendered description, a highlighted code
// sample, the props table and a snapshot of each pagination demo.
package site
