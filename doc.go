// Package bouquet turns text documents describing flowers and bouquet designs
// into bouquet lists.
//
// Every input document is planned in its own session: flower lines credit a
// fresh ledger, design lines append to the design list, and the planner
// sweeps the designs until no more bouquets can be made. The resulting codes
// are written, most recent first, to out.<document name> in the output
// location. Any afs location can be used for input and output.
//
//	srv := bouquet.New(bouquet.WithConfig(&bouquet.Config{
//		Input:  bouquet.Input{URL: "inputs", Pattern: "*.txt", Recursive: true},
//		Output: bouquet.Output{URL: "outputs", Prefix: "out.", Reverse: true},
//	}))
//	reports, err := srv.Runtime().Run(ctx)
package bouquet
