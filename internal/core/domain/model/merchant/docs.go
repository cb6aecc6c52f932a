// Package merchant provides the Merchant aggregate and its Menu value object.
// A merchant owns a menu of priced items and fulfills paid orders through a
// shared delivery agent. Acceptance enforces the paid-order precondition and
// synchronously triggers delivery; status transitions stay with the checkout
// orchestrator.
package merchant
