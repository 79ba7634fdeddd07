// Package graph provides identity-keyed node and edge sets composed from two
// piles plus an adjacency index. It models structure only: adding and
// removing nodes and edges, and querying neighbors. Traversal strategies and
// edge condition evaluation belong to callers.
package graph
