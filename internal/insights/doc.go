// Package insights contains the pure computations behind the dashboard, the
// reports page and savings plans. Nothing here touches the database: services
// gather raw sums and hand them to these functions.
package insights
