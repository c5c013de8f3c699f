// Package router provides hierarchical navigation with explicit ownership.
//
// A Tree owns every Router node. Each node keeps its own back stack and one
// slot per modal kind (sheet, full-screen, alert). Nodes refer to their
// parent by NodeID rather than by pointer, and every cross-node effect goes
// through the tree: activation, tab selection and teardown.
//
// # Basic Usage
//
//	tree := router.NewTree(router.Config{Logger: logger})
//	root := tree.Root()
//
//	// A navigation container mounts: create and activate its node
//	home := root.ChildRouter("home")
//	home.SetActive()
//
//	// Push a form and receive a result when it is popped
//	home.Push(router.Push{Tag: "formView", Payload: fields}, func(result any) {
//	    fmt.Println("form closed with", result)
//	})
//
//	home.Pop("submitted")
//
//	// The container unmounts
//	home.Release()
//
// # Destinations
//
// Destination is a closed set: Tab, Push, HalfSheet, FullScreen and Alert.
// Navigate dispatches on the variant. Push equality looks at Tag only, so
// PopUntil treats every instance of a screen kind as the same entry. Set
// Instance and use PopUntilEntry when instances must be told apart.
//
// # Completions
//
// A completion fires at most once: when its entry is popped or its slot is
// dismissed. It never fires when the node is released, when a tab switch
// resets the node, or when a presentation replaces it under ReplaceDrop.
//
// # Active Node
//
// Exactly one node per tree is active. SetActive moves the flag in one step;
// ResignActive on the active node hands it back to the parent. DeepLinkOpen
// only navigates on the active node.
//
// # Concurrency
//
// Trees are single-writer. Wrap one in an Actor when several goroutines
// need to navigate.
package router
