// Package entx is an entity-component lifecycle core. An Entity holds at
// most one component per name, tracks its last mutation time, and moves
// through a small state machine (Active, Disposing, Released) with deferred
// reclamation: components that dispose on their own are queued and swept out
// during the next release pass, and released entities and queue buffers are
// recycled through explicit pools owned by a Manager.
package entx
