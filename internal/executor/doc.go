// Package executor runs the tasks a goal needs. It walks the task graph from
// its roots, handing every task whose dependencies have completed to a
// bounded pool of workers. The first failure cancels the run.
package executor
