// Package errors provides lightweight error handling and classification primitives.
//
// The package allows to create detailed, classified errors. The classification is composed of
// the major, minor and index subclassifications registered by the packages that define them.
// i.e. the 'Config' major contains the 'Include' minor, that contains the 'Depth Exceeded' index.
package errors
