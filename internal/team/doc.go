// Package team extracts club identities from the federation's roster
// pages.
//
// Each roster page renders the league's clubs as a picker list of
// anchors. The extractor keeps only anchors whose href carries a numeric
// team_num query parameter, resolves logos and profile links to absolute
// URLs, and preserves document order.
package team
