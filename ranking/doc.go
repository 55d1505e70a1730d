// Package ranking turns a fixed point set into the ranked edge sequence that
// drives circuit merging.
//
// What it produces
//
//   - One Edge per unordered pair of distinct points: C(N,2) edges, never more,
//     never fewer.
//   - Edges ascend by squared Euclidean distance. Squared integer distance
//     orders pairs exactly like the real distance and has no floating-point
//     equality pitfalls. It is exact for points within ±positions.MaxCoord.
//   - Equal distances are ordered by (A, B), where A < B are the endpoint ids,
//     so the order is total and identical on every run.
//
// Pair generation
//
// Every pairwise distance is independent, so generation may be split across
// workers (WithWorkers). Each worker fills a disjoint, precomputed slice range;
// the complete slice is then sorted once. The result is identical for any
// worker count.
//
// Complexity: O(N² log N) time, O(N²) memory.
package ranking
