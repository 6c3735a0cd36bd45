/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reason

// Canonical reasons emitted by the entity rules and the store classifier.
//
// These are the stable identifiers clients and mappers are allowed to match
// on. Adding a reason is cheap; renaming one is a breaking change.
var (
	// UserEmailMissing: a user create or update arrived without an email.
	UserEmailMissing = MustParse("user.email.missing")

	// UserEmailMalformed: the provided email does not look like an address.
	UserEmailMalformed = MustParse("user.email.malformed")

	// UserEmailExists: the email is already taken by another user.
	UserEmailExists = MustParse("user.email.exists")

	// UserNameShort: the display name is below the minimum length enforced
	// on the typed procedure surface.
	UserNameShort = MustParse("user.name.short")

	// UserPostsDependent: the user still owns posts and cannot be deleted.
	UserPostsDependent = MustParse("user.posts.dependent")

	// PostTitleMissing: a post create arrived without a title.
	PostTitleMissing = MustParse("post.title.missing")

	// PostAuthorMissing: no author was given and no fallback author exists.
	PostAuthorMissing = MustParse("post.author.missing")

	// PostAuthorUnknown: the referenced author id does not exist.
	PostAuthorUnknown = MustParse("post.author.unknown")

	// RequestBodyMalformed: the request body could not be decoded.
	RequestBodyMalformed = MustParse("request.body.malformed")

	// RequestProcedureUnknown: the typed procedure name is not registered.
	RequestProcedureUnknown = MustParse("request.procedure.unknown")

	// StoreUnique: the database rejected the write on a unique constraint.
	StoreUnique = MustParse("store.pg.unique")

	// StoreForeignKey: the database rejected the write on a foreign key.
	StoreForeignKey = MustParse("store.pg.foreign_key")

	// StoreNoRows: the queried row does not exist.
	StoreNoRows = MustParse("store.pg.no_rows")
)
