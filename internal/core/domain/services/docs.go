// Package services holds the domain services whose rules span the Order and
// Agent aggregates and so belong to neither:
//   - AgentAssigner: hands a PLACED order to an AVAILABLE agent
//   - EarningsSettler: finalizes a delivery and credits the agent commission
//
// Both mutate the aggregates in memory only; persisting them together in one
// transaction is the caller's job.
package services
