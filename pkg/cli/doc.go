// Copyright (c) 2025, Stackwise.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the invctl tool.
//
// # Overview
//
// invctl is a client for three independent HTTP services: the CMDB (systems,
// services and environments), the cloud-instance control API, and the
// monitoring API. Every query command shares the same projection and
// rendering pipeline, so field selection, width overrides and output formats
// behave identically across record kinds.
//
// # Commands
//
// system / service / environment - query CMDB records:
//
//	invctl system list [CONDITION...] [--fields name=32,status] [--format text|csv|json|yaml|table]
//	invctl system show NAME [--label]
//
// instance - control cloud instances:
//
//	invctl instance list [CONDITION...]
//	invctl instance create --name web07 --flavor m1.small
//	invctl instance start|stop|terminate ID
//
// waitfor - poll a CMDB query until a count condition holds:
//
//	invctl waitfor system ">2" environment=prod status=up --interval 10 --timeout 300
//
// tree - reconstruct the environment hierarchy:
//
//	invctl tree [--systems]
//
// alerts / checks - read monitoring state:
//
//	invctl alerts [CONDITION...]
//	invctl checks --host web01
//
// # Exit codes
//
// 0 success, 1 usage or generic error, 2 unknown command, 3 unknown instance
// command, 4 waitfor timeout. Scripts depend on these values.
package cli
