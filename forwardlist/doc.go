// SPDX-License-Identifier: MIT

// Package forwardlist implements List, a singly linked list with O(1)
// insertion at both ends. Insertion and erasure in the middle go through
// the *After family (InsertAfter, EmplaceAfter, EraseAfter) anchored on an
// iterator; BeforeBegin anchors the front.
package forwardlist
