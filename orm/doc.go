/*
Package orm provides an easy to use db wrapper.

A ModelBucket stores protobuf models under a key prefixed with the bucket
name, so that many buckets can share a single KVStore without collisions.
Each bucket can be registered on a query router to expose its content.
*/
package orm
