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

// Package rpcx is the typed procedure surface.
//
// Every procedure is invoked as POST /rpc/{procedure} with a JSON body and
// answers either {"result": ...} on success or a google.rpc.Status document
// on failure. The status carries the gRPC code resolved by the shared mapper
// plus a google.rpc.ErrorInfo detail holding the outcome code and reason, so
// a client can branch on exactly the same taxonomy the REST surface exposes.
//
// Both surfaces sit on the same service layer; the only behavioral
// difference is that user.create applies the stricter name rule.
package rpcx
