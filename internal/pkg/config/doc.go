// Package config provides functionality for loading and managing application configuration.
//
// The crypto section keeps the layout of the CryptoSuite settings file: a key directory,
// one block per algorithm family and the Base64 alphabet toggle. Settings are read with
// viper, defaulted, validated and then handed to constructors explicitly.
package config
