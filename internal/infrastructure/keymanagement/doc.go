// Package keymanagement implements the key generators and key loaders of the three algorithm families
// and the factories that hand them out by algorithm selector and key model type.
package keymanagement
