/*
Package group buckets flat record sequences by parent id.

An Index maps each parent id to the ordered run of records claiming that
parent. Indexes are transient: assembly builds one, wires children from it
and drops it. Records for which the root predicate holds are never indexed;
they form the top level of the resulting tree and are handled by the caller.

Build scans the source sequentially and keeps the source's relative order
inside every bucket. BuildParallel trades that guarantee for a data-parallel
scan over disjoint partitions of the source.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package group

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
