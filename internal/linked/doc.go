// Package linked provides stack-ordered singly-linked lists whose nodes own
// the next node through an owner handle.
//
// UniqueList links nodes with owner.Unique and SharedList with owner.Shared.
// Both tear down from the front, one node at a time, so destroying a list never
// recurses through the chain.
package linked
