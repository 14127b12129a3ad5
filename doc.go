// Package exec implements an asynchronous sender/receiver execution model
// in the style of the P2300 proposal: senders describe work, receivers
// accept exactly one completion (a value tuple, an error, or a stop
// notification), and operation states own the connected pair's storage and
// run it to completion once started.
//
// Go has no variadic templates, no type-level programming, and no ADL, so
// three things are carried as ordinary runtime values instead of compile
// time constructs: completion payloads travel as []any (see sig and
// typelist for the signature calculus that still lets a pipeline reason
// about its own shapes without evaluating it), customization points are a
// small reflect-based registry (see dispatch) layered over native Go
// interface satisfaction, and pipeline composition is the Adaptor/Pipe pair
// in this file's sibling pipe.go rather than an operator overload.
//
// The adapt package builds composing senders (Then, LetValue, Bulk, and
// friends) on top of this package's protocol; the scheduler package
// supplies execution contexts (InlineScheduler, RunLoop, ThreadRunLoop) that
// satisfy env.Scheduler.
package exec
