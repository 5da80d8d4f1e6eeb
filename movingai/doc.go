// Package movingai reads the MovingAI grid benchmark formats.
//
// A .map file carries a four-line header followed by the rows:
//
//	type octile
//	height 3
//	width 4
//	map
//	..@.
//	.T..
//	....
//
// Passable terrain is '.', 'G', 'S' and 'T'; every other character
// ('@', 'O', 'W', ...) is blocked. Map.Grid turns the map into an
// 8-connected gridgraph.GridGraph without corner cutting, the movement
// model the scenario optimal lengths were computed for.
//
// A .scen file starts with a "version" line followed by one query per line:
//
//	bucket  map  map-width  map-height  start-x  start-y  goal-x  goal-y  optimal-length
package movingai
