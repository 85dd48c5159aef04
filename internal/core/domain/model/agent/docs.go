// Package agent implements the delivery Agent aggregate.
//
// An agent is AVAILABLE or BUSY. Only an available agent can take an order,
// which makes it busy; completing the delivery credits the commission to
// both the daily and lifetime earnings, counts the delivery and releases the
// agent. Because an agent is only assignable while AVAILABLE, it never holds
// more than one active order.
//
// Agents carry a version number bumped on every persisted change. The
// repository uses it as a compare-and-set token so that two concurrent
// assignments cannot both flip the same agent to BUSY.
package agent
