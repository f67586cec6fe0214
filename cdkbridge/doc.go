// Package cdkbridge moves zonetheory stacks and props into aws-cdk-go apps.
//
// Attach copies a synthesized stack resource by resource into an awscdk scope, so
// references between the copied resources keep working. The typed converters produce
// awsroute53 L1 props from plain values and reject unresolved tokens.
package cdkbridge
