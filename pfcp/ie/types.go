/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

// IE types (TS 29.244 clause 8.1.2).
const (
	TypeCreatePDR                                                 Type = 1
	TypePDI                                                       Type = 2
	TypeCreateFAR                                                 Type = 3
	TypeForwardingParameters                                      Type = 4
	TypeDuplicatingParameters                                     Type = 5
	TypeCreateURR                                                 Type = 6
	TypeCreateQER                                                 Type = 7
	TypeCreatedPDR                                                Type = 8
	TypeUpdatePDR                                                 Type = 9
	TypeUpdateFAR                                                 Type = 10
	TypeUpdateForwardingParameters                                Type = 11
	TypeUpdateBARWithinSessionReportResponse                      Type = 12
	TypeUpdateURR                                                 Type = 13
	TypeUpdateQER                                                 Type = 14
	TypeRemovePDR                                                 Type = 15
	TypeRemoveFAR                                                 Type = 16
	TypeRemoveURR                                                 Type = 17
	TypeRemoveQER                                                 Type = 18
	TypeCause                                                     Type = 19
	TypeSourceInterface                                           Type = 20
	TypeFTEID                                                     Type = 21
	TypeNetworkInstance                                           Type = 22
	TypeSDFFilter                                                 Type = 23
	TypeApplicationID                                             Type = 24
	TypeGateStatus                                                Type = 25
	TypeMBR                                                       Type = 26
	TypeGBR                                                       Type = 27
	TypeQERCorrelationID                                          Type = 28
	TypePrecedence                                                Type = 29
	TypeTransportLevelMarking                                     Type = 30
	TypeVolumeThreshold                                           Type = 31
	TypeTimeThreshold                                             Type = 32
	TypeMonitoringTime                                            Type = 33
	TypeSubsequentVolumeThreshold                                 Type = 34
	TypeSubsequentTimeThreshold                                   Type = 35
	TypeInactivityDetectionTime                                   Type = 36
	TypeReportingTriggers                                         Type = 37
	TypeRedirectInformation                                       Type = 38
	TypeReportType                                                Type = 39
	TypeOffendingIE                                               Type = 40
	TypeForwardingPolicy                                          Type = 41
	TypeDestinationInterface                                      Type = 42
	TypeUPFunctionFeatures                                        Type = 43
	TypeApplyAction                                               Type = 44
	TypeDownlinkDataServiceInformation                            Type = 45
	TypeDownlinkDataNotificationDelay                             Type = 46
	TypeDLBufferingDuration                                       Type = 47
	TypeDLBufferingSuggestedPacketCount                           Type = 48
	TypePFCPSMReqFlags                                            Type = 49
	TypePFCPSRRspFlags                                            Type = 50
	TypeLoadControlInformation                                    Type = 51
	TypeSequenceNumber                                            Type = 52
	TypeMetric                                                    Type = 53
	TypeOverloadControlInformation                                Type = 54
	TypeTimer                                                     Type = 55
	TypePDRID                                                     Type = 56
	TypeFSEID                                                     Type = 57
	TypeApplicationIDsPFDs                                        Type = 58
	TypePFDContext                                                Type = 59
	TypeNodeID                                                    Type = 60
	TypePFDContents                                               Type = 61
	TypeMeasurementMethod                                         Type = 62
	TypeUsageReportTrigger                                        Type = 63
	TypeMeasurementPeriod                                         Type = 64
	TypeFQCSID                                                    Type = 65
	TypeVolumeMeasurement                                         Type = 66
	TypeDurationMeasurement                                       Type = 67
	TypeApplicationDetectionInformation                           Type = 68
	TypeTimeOfFirstPacket                                         Type = 69
	TypeTimeOfLastPacket                                          Type = 70
	TypeQuotaHoldingTime                                          Type = 71
	TypeDroppedDLTrafficThreshold                                 Type = 72
	TypeVolumeQuota                                               Type = 73
	TypeTimeQuota                                                 Type = 74
	TypeStartTime                                                 Type = 75
	TypeEndTime                                                   Type = 76
	TypeQueryURR                                                  Type = 77
	TypeUsageReportWithinSessionModificationResponse              Type = 78
	TypeUsageReportWithinSessionDeletionResponse                  Type = 79
	TypeUsageReportWithinSessionReportRequest                     Type = 80
	TypeURRID                                                     Type = 81
	TypeLinkedURRID                                               Type = 82
	TypeDownlinkDataReport                                        Type = 83
	TypeOuterHeaderCreation                                       Type = 84
	TypeCreateBAR                                                 Type = 85
	TypeUpdateBAR                                                 Type = 86
	TypeRemoveBAR                                                 Type = 87
	TypeBARID                                                     Type = 88
	TypeCPFunctionFeatures                                        Type = 89
	TypeUsageInformation                                          Type = 90
	TypeApplicationInstanceID                                     Type = 91
	TypeFlowInformation                                           Type = 92
	TypeUEIPAddress                                               Type = 93
	TypePacketRate                                                Type = 94
	TypeOuterHeaderRemoval                                        Type = 95
	TypeRecoveryTimeStamp                                         Type = 96
	TypeDLFlowLevelMarking                                        Type = 97
	TypeHeaderEnrichment                                          Type = 98
	TypeErrorIndicationReport                                     Type = 99
	TypeMeasurementInformation                                    Type = 100
	TypeNodeReportType                                            Type = 101
	TypeUserPlanePathFailureReport                                Type = 102
	TypeRemoteGTPUPeer                                            Type = 103
	TypeURSEQN                                                    Type = 104
	TypeUpdateDuplicatingParameters                               Type = 105
	TypeActivatePredefinedRules                                   Type = 106
	TypeDeactivatePredefinedRules                                 Type = 107
	TypeFARID                                                     Type = 108
	TypeQERID                                                     Type = 109
	TypeOCIFlags                                                  Type = 110
	TypePFCPAssociationReleaseRequest                             Type = 111
	TypeGracefulReleasePeriod                                     Type = 112
	TypePDNType                                                   Type = 113
	TypeFailedRuleID                                              Type = 114
	TypeTimeQuotaMechanism                                        Type = 115
	TypeUserPlaneIPResourceInformation                            Type = 116
	TypeUserPlaneInactivityTimer                                  Type = 117
	TypeAggregatedURRs                                            Type = 118
	TypeMultiplier                                                Type = 119
	TypeAggregatedURRID                                           Type = 120
	TypeSubsequentVolumeQuota                                     Type = 121
	TypeSubsequentTimeQuota                                       Type = 122
	TypeRQI                                                       Type = 123
	TypeQFI                                                       Type = 124
	TypeQueryURRReference                                         Type = 125
	TypeAdditionalUsageReportsInformation                         Type = 126
	TypeCreateTrafficEndpoint                                     Type = 127
	TypeCreatedTrafficEndpoint                                    Type = 128
	TypeUpdateTrafficEndpoint                                     Type = 129
	TypeRemoveTrafficEndpoint                                     Type = 130
	TypeTrafficEndpointID                                         Type = 131
	TypeEthernetPacketFilter                                      Type = 132
	TypeMACAddress                                                Type = 133
	TypeCTag                                                      Type = 134
	TypeSTag                                                      Type = 135
	TypeEthertype                                                 Type = 136
	TypeProxying                                                  Type = 137
	TypeEthernetFilterID                                          Type = 138
	TypeEthernetFilterProperties                                  Type = 139
	TypeSuggestedBufferingPacketsCount                            Type = 140
	TypeUserID                                                    Type = 141
	TypeEthernetPDUSessionInformation                             Type = 142
	TypeEthernetTrafficInformation                                Type = 143
	TypeMACAddressesDetected                                      Type = 144
	TypeMACAddressesRemoved                                       Type = 145
	TypeEthernetInactivityTimer                                   Type = 146
	TypeAdditionalMonitoringTime                                  Type = 147
	TypeEventQuota                                                Type = 148
	TypeEventThreshold                                            Type = 149
	TypeSubsequentEventQuota                                      Type = 150
	TypeSubsequentEventThreshold                                  Type = 151
	TypeTraceInformation                                          Type = 152
	TypeFramedRoute                                               Type = 153
	TypeFramedRouting                                             Type = 154
	TypeFramedIPv6Route                                           Type = 155
	TypeEventTimeStamp                                            Type = 156
	TypeAveragingWindow                                           Type = 157
	TypePagingPolicyIndicator                                     Type = 158
	TypeAPNDNN                                                    Type = 159
	Type3GPPInterfaceType                                         Type = 160
	TypePFCPSRReqFlags                                            Type = 161
	TypePFCPAUReqFlags                                            Type = 162
	TypeActivationTime                                            Type = 163
	TypeDeactivationTime                                          Type = 164
	TypeCreateMAR                                                 Type = 165
	Type3GPPAccessForwardingActionInformation                     Type = 166
	TypeNon3GPPAccessForwardingActionInformation                  Type = 167
	TypeRemoveMAR                                                 Type = 168
	TypeUpdateMAR                                                 Type = 169
	TypeMARID                                                     Type = 170
	TypeSteeringFunctionality                                     Type = 171
	TypeSteeringMode                                              Type = 172
	TypeWeight                                                    Type = 173
	TypePriority                                                  Type = 174
	TypeUpdate3GPPAccessForwardingActionInformation               Type = 175
	TypeUpdateNon3GPPAccessForwardingActionInformation            Type = 176
	TypeUEIPAddressPoolIdentity                                   Type = 177
	TypeAlternativeSMFIPAddress                                   Type = 178
	TypePacketReplicationAndDetectionCarryOnInformation           Type = 179
	TypeSMFSetID                                                  Type = 180
	TypeQuotaValidityTime                                         Type = 181
	TypeNumberOfReports                                           Type = 182
	TypePFCPSessionRetentionInformation                           Type = 183
	TypePFCPASRspFlags                                            Type = 184
	TypeCPPFCPEntityIPAddress                                     Type = 185
	TypePFCPSEReqFlags                                            Type = 186
	TypeUserPlanePathRecoveryReport                               Type = 187
	TypeIPMulticastAddressingInfo                                 Type = 188
	TypeJoinIPMulticastInformationWithinUsageReport               Type = 189
	TypeLeaveIPMulticastInformationWithinUsageReport              Type = 190
	TypeIPMulticastAddress                                        Type = 191
	TypeSourceIPAddress                                           Type = 192
	TypePacketRateStatus                                          Type = 193
	TypeCreateBridgeInfoForTSC                                    Type = 194
	TypeCreatedBridgeInfoForTSC                                   Type = 195
	TypeDSTTPortNumber                                            Type = 196
	TypeNWTTPortNumber                                            Type = 197
	TypeTSNBridgeID                                               Type = 198
	TypeTSCManagementInformationWithinSessionModificationRequest  Type = 199
	TypeTSCManagementInformationWithinSessionModificationResponse Type = 200
	TypeTSCManagementInformationWithinSessionReportRequest        Type = 201
	TypePortManagementInformationContainer                        Type = 202
	TypeClockDriftControlInformation                              Type = 203
	TypeRequestedClockDriftInformation                            Type = 204
	TypeClockDriftReport                                          Type = 205
	TypeTSNTimeDomainNumber                                       Type = 206
	TypeTimeOffsetThreshold                                       Type = 207
	TypeCumulativeRateRatioThreshold                              Type = 208
	TypeTimeOffsetMeasurement                                     Type = 209
	TypeCumulativeRateRatioMeasurement                            Type = 210
	TypeRemoveSRR                                                 Type = 211
	TypeCreateSRR                                                 Type = 212
	TypeUpdateSRR                                                 Type = 213
	TypeSessionReport                                             Type = 214
	TypeSRRID                                                     Type = 215
	TypeAccessAvailabilityControlInformation                      Type = 216
	TypeRequestedAccessAvailabilityInformation                    Type = 217
	TypeAccessAvailabilityReport                                  Type = 218
	TypeAccessAvailabilityInformation                             Type = 219
	TypeProvideATSSSControlInformation                            Type = 220
	TypeATSSSControlParameters                                    Type = 221
	TypeMPTCPControlInformation                                   Type = 222
	TypeATSSSLLControlInformation                                 Type = 223
	TypePMFControlInformation                                     Type = 224
	TypeMPTCPParameters                                           Type = 225
	TypeATSSSLLParameters                                         Type = 226
	TypePMFParameters                                             Type = 227
	TypeMPTCPAddressInformation                                   Type = 228
	TypeUELinkSpecificIPAddress                                   Type = 229
	TypePMFAddressInformation                                     Type = 230
	TypeATSSSLLInformation                                        Type = 231
	TypeDataNetworkAccessIdentifier                               Type = 232
	TypeUEIPAddressPoolInformation                                Type = 233
	TypeAveragePacketDelay                                        Type = 234
	TypeMinimumPacketDelay                                        Type = 235
	TypeMaximumPacketDelay                                        Type = 236
	TypeQoSReportTrigger                                          Type = 237
	TypeGTPUPathQoSControlInformation                             Type = 238
	TypeGTPUPathQoSReport                                         Type = 239
	TypeQoSInformationInGTPUPathQoSReport                         Type = 240
	TypeGTPUPathInterfaceType                                     Type = 241
	TypeQoSMonitoringPerQoSFlowControlInformation                 Type = 242
	TypeRequestedQoSMonitoring                                    Type = 243
	TypeReportingFrequency                                        Type = 244
	TypePacketDelayThresholds                                     Type = 245
	TypeMinimumWaitTime                                           Type = 246
	TypeQoSMonitoringReport                                       Type = 247
	TypeQoSMonitoringMeasurement                                  Type = 248
	TypeMTEDTControlInformation                                   Type = 249
	TypeDLDataPacketsSize                                         Type = 250
	TypeQERControlIndications                                     Type = 251
	TypePacketRateStatusReport                                    Type = 252
	TypeNFInstanceID                                              Type = 253
	TypeEthernetContextInformation                                Type = 254
	TypeRedundantTransmissionParameters                           Type = 255
	TypeUpdatedPDR                                                Type = 256
	TypeSNSSAI                                                    Type = 257
	TypeIPVersion                                                 Type = 258
	TypePFCPASReqFlags                                            Type = 259
	TypeDataStatus                                                Type = 260
	TypeProvideRDSConfigurationInformation                        Type = 261
	TypeRDSConfigurationInformation                               Type = 262
	TypeQueryPacketRateStatusWithinSessionModificationRequest     Type = 263
	TypePacketRateStatusReportWithinSessionModificationResponse   Type = 264
	TypeMPTCPApplicableIndication                                 Type = 265
	TypeBridgeManagementInformationContainer                      Type = 266
	TypeUEIPAddressUsageInformation                               Type = 267
	TypeNumberOfUEIPAddresses                                     Type = 268
	TypeValidityTimer                                             Type = 269
	TypeRedundantTransmissionForwardingParameters                 Type = 270
	TypeTransportDelayReporting                                   Type = 271
	TypePartialFailureInformation                                 Type = 272
	TypeL2TPTunnelInformation                                     Type = 276
	TypeL2TPSessionInformation                                    Type = 277
	TypeCreatedL2TPSession                                        Type = 279
	TypePFCPSessionChangeInfo                                     Type = 290
	TypeGroupID                                                   Type = 291
	TypeCPIPAddress                                               Type = 292
	TypeMBSSessionN4mbControlInformation                          Type = 300
	TypeMBSMulticastParameters                                    Type = 301
	TypeAddMBSUnicastParameters                                   Type = 302
	TypeMBSSessionN4mbInformation                                 Type = 303
	TypeRemoveMBSUnicastParameters                                Type = 304
	TypeMBSSessionIdentifier                                      Type = 305
	TypeMulticastTransportInformation                             Type = 306
	TypeMBSN4mbReqFlags                                           Type = 307
	TypeLocalIngressTunnel                                        Type = 308
	TypeMBSUnicastParametersID                                    Type = 309
	TypeMBSSessionN4ControlInformation                            Type = 310
	TypeMBSSessionN4Information                                   Type = 311
	TypeMBSN4RespFlags                                            Type = 312
	TypeTunnelPassword                                            Type = 313
	TypeAreaSessionID                                             Type = 314
	TypePeerUPRestartReport                                       Type = 315
	TypeDSCPToPPIControlInformation                               Type = 316
	TypeDSCPToPPIMappingInformation                               Type = 317
	TypePFCPSDRspFlags                                            Type = 318
	TypeQERIndications                                            Type = 319
	TypeVendorSpecificNodeReportType                              Type = 320
	TypeConfiguredTimeDomain                                      Type = 321
	TypeMetadata                                                  Type = 322
	TypeTrafficParameterMeasurementControlInformation             Type = 323
	TypeTrafficParameterMeasurementReport                         Type = 324
	TypeTrafficParameterThreshold                                 Type = 325
	TypeDLPeriodicity                                             Type = 326
	TypeN6JitterMeasurement                                       Type = 327
	TypeTrafficParameterMeasurementIndication                     Type = 328
	TypeULPeriodicity                                             Type = 329
	TypeMPQUICControlInformation                                  Type = 330
	TypeMPQUICParameters                                          Type = 331
	TypeMPQUICAddressInformation                                  Type = 332
	TypeTransportMode                                             Type = 333
	TypeProtocolDescription                                       Type = 334
	TypeReportingSuggestionInfo                                   Type = 335
	TypeTLContainer                                               Type = 336
	TypeMeasurementIndication                                     Type = 337
	TypeHPLMNSNSSAI                                               Type = 338
	TypeMediaTransportProtocol                                    Type = 339
	TypeRTPHeaderExtensionInformation                             Type = 340
	TypeRTPPayloadInformation                                     Type = 341
	TypeRTPHeaderExtensionType                                    Type = 342
	TypeRTPHeaderExtensionID                                      Type = 343
	TypeRTPPayloadType                                            Type = 344
	TypeRTPPayloadFormat                                          Type = 345
	TypeExtendedDLBufferingNotificationPolicy                     Type = 346
	TypeMTSDTControlInformation                                   Type = 347
	TypeReportingThresholds                                       Type = 348
	TypeRTPHeaderExtensionAdditionalInformation                   Type = 349
	TypeMappedN6IPAddress                                         Type = 350
	TypeN6RoutingInformation                                      Type = 351
	TypeURI                                                       Type = 352
	TypeUELevelMeasurementsConfiguration                          Type = 353
	TypeReportingControlInformation                               Type = 389
)

var typeNames = map[Type]string{
	TypeCreatePDR:                                                 "CreatePDR",
	TypePDI:                                                       "PDI",
	TypeCreateFAR:                                                 "CreateFAR",
	TypeForwardingParameters:                                      "ForwardingParameters",
	TypeDuplicatingParameters:                                     "DuplicatingParameters",
	TypeCreateURR:                                                 "CreateURR",
	TypeCreateQER:                                                 "CreateQER",
	TypeCreatedPDR:                                                "CreatedPDR",
	TypeUpdatePDR:                                                 "UpdatePDR",
	TypeUpdateFAR:                                                 "UpdateFAR",
	TypeUpdateForwardingParameters:                                "UpdateForwardingParameters",
	TypeUpdateBARWithinSessionReportResponse:                      "UpdateBARWithinSessionReportResponse",
	TypeUpdateURR:                                                 "UpdateURR",
	TypeUpdateQER:                                                 "UpdateQER",
	TypeRemovePDR:                                                 "RemovePDR",
	TypeRemoveFAR:                                                 "RemoveFAR",
	TypeRemoveURR:                                                 "RemoveURR",
	TypeRemoveQER:                                                 "RemoveQER",
	TypeCause:                                                     "Cause",
	TypeSourceInterface:                                           "SourceInterface",
	TypeFTEID:                                                     "FTEID",
	TypeNetworkInstance:                                           "NetworkInstance",
	TypeSDFFilter:                                                 "SDFFilter",
	TypeApplicationID:                                             "ApplicationID",
	TypeGateStatus:                                                "GateStatus",
	TypeMBR:                                                       "MBR",
	TypeGBR:                                                       "GBR",
	TypeQERCorrelationID:                                          "QERCorrelationID",
	TypePrecedence:                                                "Precedence",
	TypeTransportLevelMarking:                                     "TransportLevelMarking",
	TypeVolumeThreshold:                                           "VolumeThreshold",
	TypeTimeThreshold:                                             "TimeThreshold",
	TypeMonitoringTime:                                            "MonitoringTime",
	TypeSubsequentVolumeThreshold:                                 "SubsequentVolumeThreshold",
	TypeSubsequentTimeThreshold:                                   "SubsequentTimeThreshold",
	TypeInactivityDetectionTime:                                   "InactivityDetectionTime",
	TypeReportingTriggers:                                         "ReportingTriggers",
	TypeRedirectInformation:                                       "RedirectInformation",
	TypeReportType:                                                "ReportType",
	TypeOffendingIE:                                               "OffendingIE",
	TypeForwardingPolicy:                                          "ForwardingPolicy",
	TypeDestinationInterface:                                      "DestinationInterface",
	TypeUPFunctionFeatures:                                        "UPFunctionFeatures",
	TypeApplyAction:                                               "ApplyAction",
	TypeDownlinkDataServiceInformation:                            "DownlinkDataServiceInformation",
	TypeDownlinkDataNotificationDelay:                             "DownlinkDataNotificationDelay",
	TypeDLBufferingDuration:                                       "DLBufferingDuration",
	TypeDLBufferingSuggestedPacketCount:                           "DLBufferingSuggestedPacketCount",
	TypePFCPSMReqFlags:                                            "PFCPSMReqFlags",
	TypePFCPSRRspFlags:                                            "PFCPSRRspFlags",
	TypeLoadControlInformation:                                    "LoadControlInformation",
	TypeSequenceNumber:                                            "SequenceNumber",
	TypeMetric:                                                    "Metric",
	TypeOverloadControlInformation:                                "OverloadControlInformation",
	TypeTimer:                                                     "Timer",
	TypePDRID:                                                     "PDRID",
	TypeFSEID:                                                     "FSEID",
	TypeApplicationIDsPFDs:                                        "ApplicationIDsPFDs",
	TypePFDContext:                                                "PFDContext",
	TypeNodeID:                                                    "NodeID",
	TypePFDContents:                                               "PFDContents",
	TypeMeasurementMethod:                                         "MeasurementMethod",
	TypeUsageReportTrigger:                                        "UsageReportTrigger",
	TypeMeasurementPeriod:                                         "MeasurementPeriod",
	TypeFQCSID:                                                    "FQCSID",
	TypeVolumeMeasurement:                                         "VolumeMeasurement",
	TypeDurationMeasurement:                                       "DurationMeasurement",
	TypeApplicationDetectionInformation:                           "ApplicationDetectionInformation",
	TypeTimeOfFirstPacket:                                         "TimeOfFirstPacket",
	TypeTimeOfLastPacket:                                          "TimeOfLastPacket",
	TypeQuotaHoldingTime:                                          "QuotaHoldingTime",
	TypeDroppedDLTrafficThreshold:                                 "DroppedDLTrafficThreshold",
	TypeVolumeQuota:                                               "VolumeQuota",
	TypeTimeQuota:                                                 "TimeQuota",
	TypeStartTime:                                                 "StartTime",
	TypeEndTime:                                                   "EndTime",
	TypeQueryURR:                                                  "QueryURR",
	TypeUsageReportWithinSessionModificationResponse:              "UsageReportWithinSessionModificationResponse",
	TypeUsageReportWithinSessionDeletionResponse:                  "UsageReportWithinSessionDeletionResponse",
	TypeUsageReportWithinSessionReportRequest:                     "UsageReportWithinSessionReportRequest",
	TypeURRID:                                                     "URRID",
	TypeLinkedURRID:                                               "LinkedURRID",
	TypeDownlinkDataReport:                                        "DownlinkDataReport",
	TypeOuterHeaderCreation:                                       "OuterHeaderCreation",
	TypeCreateBAR:                                                 "CreateBAR",
	TypeUpdateBAR:                                                 "UpdateBAR",
	TypeRemoveBAR:                                                 "RemoveBAR",
	TypeBARID:                                                     "BARID",
	TypeCPFunctionFeatures:                                        "CPFunctionFeatures",
	TypeUsageInformation:                                          "UsageInformation",
	TypeApplicationInstanceID:                                     "ApplicationInstanceID",
	TypeFlowInformation:                                           "FlowInformation",
	TypeUEIPAddress:                                               "UEIPAddress",
	TypePacketRate:                                                "PacketRate",
	TypeOuterHeaderRemoval:                                        "OuterHeaderRemoval",
	TypeRecoveryTimeStamp:                                         "RecoveryTimeStamp",
	TypeDLFlowLevelMarking:                                        "DLFlowLevelMarking",
	TypeHeaderEnrichment:                                          "HeaderEnrichment",
	TypeErrorIndicationReport:                                     "ErrorIndicationReport",
	TypeMeasurementInformation:                                    "MeasurementInformation",
	TypeNodeReportType:                                            "NodeReportType",
	TypeUserPlanePathFailureReport:                                "UserPlanePathFailureReport",
	TypeRemoteGTPUPeer:                                            "RemoteGTPUPeer",
	TypeURSEQN:                                                    "URSEQN",
	TypeUpdateDuplicatingParameters:                               "UpdateDuplicatingParameters",
	TypeActivatePredefinedRules:                                   "ActivatePredefinedRules",
	TypeDeactivatePredefinedRules:                                 "DeactivatePredefinedRules",
	TypeFARID:                                                     "FARID",
	TypeQERID:                                                     "QERID",
	TypeOCIFlags:                                                  "OCIFlags",
	TypePFCPAssociationReleaseRequest:                             "PFCPAssociationReleaseRequest",
	TypeGracefulReleasePeriod:                                     "GracefulReleasePeriod",
	TypePDNType:                                                   "PDNType",
	TypeFailedRuleID:                                              "FailedRuleID",
	TypeTimeQuotaMechanism:                                        "TimeQuotaMechanism",
	TypeUserPlaneIPResourceInformation:                            "UserPlaneIPResourceInformation",
	TypeUserPlaneInactivityTimer:                                  "UserPlaneInactivityTimer",
	TypeAggregatedURRs:                                            "AggregatedURRs",
	TypeMultiplier:                                                "Multiplier",
	TypeAggregatedURRID:                                           "AggregatedURRID",
	TypeSubsequentVolumeQuota:                                     "SubsequentVolumeQuota",
	TypeSubsequentTimeQuota:                                       "SubsequentTimeQuota",
	TypeRQI:                                                       "RQI",
	TypeQFI:                                                       "QFI",
	TypeQueryURRReference:                                         "QueryURRReference",
	TypeAdditionalUsageReportsInformation:                         "AdditionalUsageReportsInformation",
	TypeCreateTrafficEndpoint:                                     "CreateTrafficEndpoint",
	TypeCreatedTrafficEndpoint:                                    "CreatedTrafficEndpoint",
	TypeUpdateTrafficEndpoint:                                     "UpdateTrafficEndpoint",
	TypeRemoveTrafficEndpoint:                                     "RemoveTrafficEndpoint",
	TypeTrafficEndpointID:                                         "TrafficEndpointID",
	TypeEthernetPacketFilter:                                      "EthernetPacketFilter",
	TypeMACAddress:                                                "MACAddress",
	TypeCTag:                                                      "CTag",
	TypeSTag:                                                      "STag",
	TypeEthertype:                                                 "Ethertype",
	TypeProxying:                                                  "Proxying",
	TypeEthernetFilterID:                                          "EthernetFilterID",
	TypeEthernetFilterProperties:                                  "EthernetFilterProperties",
	TypeSuggestedBufferingPacketsCount:                            "SuggestedBufferingPacketsCount",
	TypeUserID:                                                    "UserID",
	TypeEthernetPDUSessionInformation:                             "EthernetPDUSessionInformation",
	TypeEthernetTrafficInformation:                                "EthernetTrafficInformation",
	TypeMACAddressesDetected:                                      "MACAddressesDetected",
	TypeMACAddressesRemoved:                                       "MACAddressesRemoved",
	TypeEthernetInactivityTimer:                                   "EthernetInactivityTimer",
	TypeAdditionalMonitoringTime:                                  "AdditionalMonitoringTime",
	TypeEventQuota:                                                "EventQuota",
	TypeEventThreshold:                                            "EventThreshold",
	TypeSubsequentEventQuota:                                      "SubsequentEventQuota",
	TypeSubsequentEventThreshold:                                  "SubsequentEventThreshold",
	TypeTraceInformation:                                          "TraceInformation",
	TypeFramedRoute:                                               "FramedRoute",
	TypeFramedRouting:                                             "FramedRouting",
	TypeFramedIPv6Route:                                           "FramedIPv6Route",
	TypeEventTimeStamp:                                            "EventTimeStamp",
	TypeAveragingWindow:                                           "AveragingWindow",
	TypePagingPolicyIndicator:                                     "PagingPolicyIndicator",
	TypeAPNDNN:                                                    "APNDNN",
	Type3GPPInterfaceType:                                         "3GPPInterfaceType",
	TypePFCPSRReqFlags:                                            "PFCPSRReqFlags",
	TypePFCPAUReqFlags:                                            "PFCPAUReqFlags",
	TypeActivationTime:                                            "ActivationTime",
	TypeDeactivationTime:                                          "DeactivationTime",
	TypeCreateMAR:                                                 "CreateMAR",
	Type3GPPAccessForwardingActionInformation:                     "3GPPAccessForwardingActionInformation",
	TypeNon3GPPAccessForwardingActionInformation:                  "Non3GPPAccessForwardingActionInformation",
	TypeRemoveMAR:                                                 "RemoveMAR",
	TypeUpdateMAR:                                                 "UpdateMAR",
	TypeMARID:                                                     "MARID",
	TypeSteeringFunctionality:                                     "SteeringFunctionality",
	TypeSteeringMode:                                              "SteeringMode",
	TypeWeight:                                                    "Weight",
	TypePriority:                                                  "Priority",
	TypeUpdate3GPPAccessForwardingActionInformation:               "Update3GPPAccessForwardingActionInformation",
	TypeUpdateNon3GPPAccessForwardingActionInformation:            "UpdateNon3GPPAccessForwardingActionInformation",
	TypeUEIPAddressPoolIdentity:                                   "UEIPAddressPoolIdentity",
	TypeAlternativeSMFIPAddress:                                   "AlternativeSMFIPAddress",
	TypePacketReplicationAndDetectionCarryOnInformation:           "PacketReplicationAndDetectionCarryOnInformation",
	TypeSMFSetID:                                                  "SMFSetID",
	TypeQuotaValidityTime:                                         "QuotaValidityTime",
	TypeNumberOfReports:                                           "NumberOfReports",
	TypePFCPSessionRetentionInformation:                           "PFCPSessionRetentionInformation",
	TypePFCPASRspFlags:                                            "PFCPASRspFlags",
	TypeCPPFCPEntityIPAddress:                                     "CPPFCPEntityIPAddress",
	TypePFCPSEReqFlags:                                            "PFCPSEReqFlags",
	TypeUserPlanePathRecoveryReport:                               "UserPlanePathRecoveryReport",
	TypeIPMulticastAddressingInfo:                                 "IPMulticastAddressingInfo",
	TypeJoinIPMulticastInformationWithinUsageReport:               "JoinIPMulticastInformationWithinUsageReport",
	TypeLeaveIPMulticastInformationWithinUsageReport:              "LeaveIPMulticastInformationWithinUsageReport",
	TypeIPMulticastAddress:                                        "IPMulticastAddress",
	TypeSourceIPAddress:                                           "SourceIPAddress",
	TypePacketRateStatus:                                          "PacketRateStatus",
	TypeCreateBridgeInfoForTSC:                                    "CreateBridgeInfoForTSC",
	TypeCreatedBridgeInfoForTSC:                                   "CreatedBridgeInfoForTSC",
	TypeDSTTPortNumber:                                            "DSTTPortNumber",
	TypeNWTTPortNumber:                                            "NWTTPortNumber",
	TypeTSNBridgeID:                                               "TSNBridgeID",
	TypeTSCManagementInformationWithinSessionModificationRequest:  "TSCManagementInformationWithinSessionModificationRequest",
	TypeTSCManagementInformationWithinSessionModificationResponse: "TSCManagementInformationWithinSessionModificationResponse",
	TypeTSCManagementInformationWithinSessionReportRequest:        "TSCManagementInformationWithinSessionReportRequest",
	TypePortManagementInformationContainer:                        "PortManagementInformationContainer",
	TypeClockDriftControlInformation:                              "ClockDriftControlInformation",
	TypeRequestedClockDriftInformation:                            "RequestedClockDriftInformation",
	TypeClockDriftReport:                                          "ClockDriftReport",
	TypeTSNTimeDomainNumber:                                       "TSNTimeDomainNumber",
	TypeTimeOffsetThreshold:                                       "TimeOffsetThreshold",
	TypeCumulativeRateRatioThreshold:                              "CumulativeRateRatioThreshold",
	TypeTimeOffsetMeasurement:                                     "TimeOffsetMeasurement",
	TypeCumulativeRateRatioMeasurement:                            "CumulativeRateRatioMeasurement",
	TypeRemoveSRR:                                                 "RemoveSRR",
	TypeCreateSRR:                                                 "CreateSRR",
	TypeUpdateSRR:                                                 "UpdateSRR",
	TypeSessionReport:                                             "SessionReport",
	TypeSRRID:                                                     "SRRID",
	TypeAccessAvailabilityControlInformation:                      "AccessAvailabilityControlInformation",
	TypeRequestedAccessAvailabilityInformation:                    "RequestedAccessAvailabilityInformation",
	TypeAccessAvailabilityReport:                                  "AccessAvailabilityReport",
	TypeAccessAvailabilityInformation:                             "AccessAvailabilityInformation",
	TypeProvideATSSSControlInformation:                            "ProvideATSSSControlInformation",
	TypeATSSSControlParameters:                                    "ATSSSControlParameters",
	TypeMPTCPControlInformation:                                   "MPTCPControlInformation",
	TypeATSSSLLControlInformation:                                 "ATSSSLLControlInformation",
	TypePMFControlInformation:                                     "PMFControlInformation",
	TypeMPTCPParameters:                                           "MPTCPParameters",
	TypeATSSSLLParameters:                                         "ATSSSLLParameters",
	TypePMFParameters:                                             "PMFParameters",
	TypeMPTCPAddressInformation:                                   "MPTCPAddressInformation",
	TypeUELinkSpecificIPAddress:                                   "UELinkSpecificIPAddress",
	TypePMFAddressInformation:                                     "PMFAddressInformation",
	TypeATSSSLLInformation:                                        "ATSSSLLInformation",
	TypeDataNetworkAccessIdentifier:                               "DataNetworkAccessIdentifier",
	TypeUEIPAddressPoolInformation:                                "UEIPAddressPoolInformation",
	TypeAveragePacketDelay:                                        "AveragePacketDelay",
	TypeMinimumPacketDelay:                                        "MinimumPacketDelay",
	TypeMaximumPacketDelay:                                        "MaximumPacketDelay",
	TypeQoSReportTrigger:                                          "QoSReportTrigger",
	TypeGTPUPathQoSControlInformation:                             "GTPUPathQoSControlInformation",
	TypeGTPUPathQoSReport:                                         "GTPUPathQoSReport",
	TypeQoSInformationInGTPUPathQoSReport:                         "QoSInformationInGTPUPathQoSReport",
	TypeGTPUPathInterfaceType:                                     "GTPUPathInterfaceType",
	TypeQoSMonitoringPerQoSFlowControlInformation:                 "QoSMonitoringPerQoSFlowControlInformation",
	TypeRequestedQoSMonitoring:                                    "RequestedQoSMonitoring",
	TypeReportingFrequency:                                        "ReportingFrequency",
	TypePacketDelayThresholds:                                     "PacketDelayThresholds",
	TypeMinimumWaitTime:                                           "MinimumWaitTime",
	TypeQoSMonitoringReport:                                       "QoSMonitoringReport",
	TypeQoSMonitoringMeasurement:                                  "QoSMonitoringMeasurement",
	TypeMTEDTControlInformation:                                   "MTEDTControlInformation",
	TypeDLDataPacketsSize:                                         "DLDataPacketsSize",
	TypeQERControlIndications:                                     "QERControlIndications",
	TypePacketRateStatusReport:                                    "PacketRateStatusReport",
	TypeNFInstanceID:                                              "NFInstanceID",
	TypeEthernetContextInformation:                                "EthernetContextInformation",
	TypeRedundantTransmissionParameters:                           "RedundantTransmissionParameters",
	TypeUpdatedPDR:                                                "UpdatedPDR",
	TypeSNSSAI:                                                    "SNSSAI",
	TypeIPVersion:                                                 "IPVersion",
	TypePFCPASReqFlags:                                            "PFCPASReqFlags",
	TypeDataStatus:                                                "DataStatus",
	TypeProvideRDSConfigurationInformation:                        "ProvideRDSConfigurationInformation",
	TypeRDSConfigurationInformation:                               "RDSConfigurationInformation",
	TypeQueryPacketRateStatusWithinSessionModificationRequest:     "QueryPacketRateStatusWithinSessionModificationRequest",
	TypePacketRateStatusReportWithinSessionModificationResponse:   "PacketRateStatusReportWithinSessionModificationResponse",
	TypeMPTCPApplicableIndication:                                 "MPTCPApplicableIndication",
	TypeBridgeManagementInformationContainer:                      "BridgeManagementInformationContainer",
	TypeUEIPAddressUsageInformation:                               "UEIPAddressUsageInformation",
	TypeNumberOfUEIPAddresses:                                     "NumberOfUEIPAddresses",
	TypeValidityTimer:                                             "ValidityTimer",
	TypeRedundantTransmissionForwardingParameters:                 "RedundantTransmissionForwardingParameters",
	TypeTransportDelayReporting:                                   "TransportDelayReporting",
	TypePartialFailureInformation:                                 "PartialFailureInformation",
	TypeL2TPTunnelInformation:                                     "L2TPTunnelInformation",
	TypeL2TPSessionInformation:                                    "L2TPSessionInformation",
	TypeCreatedL2TPSession:                                        "CreatedL2TPSession",
	TypePFCPSessionChangeInfo:                                     "PFCPSessionChangeInfo",
	TypeGroupID:                                                   "GroupID",
	TypeCPIPAddress:                                               "CPIPAddress",
	TypeMBSSessionN4mbControlInformation:                          "MBSSessionN4mbControlInformation",
	TypeMBSMulticastParameters:                                    "MBSMulticastParameters",
	TypeAddMBSUnicastParameters:                                   "AddMBSUnicastParameters",
	TypeMBSSessionN4mbInformation:                                 "MBSSessionN4mbInformation",
	TypeRemoveMBSUnicastParameters:                                "RemoveMBSUnicastParameters",
	TypeMBSSessionIdentifier:                                      "MBSSessionIdentifier",
	TypeMulticastTransportInformation:                             "MulticastTransportInformation",
	TypeMBSN4mbReqFlags:                                           "MBSN4mbReqFlags",
	TypeLocalIngressTunnel:                                        "LocalIngressTunnel",
	TypeMBSUnicastParametersID:                                    "MBSUnicastParametersID",
	TypeMBSSessionN4ControlInformation:                            "MBSSessionN4ControlInformation",
	TypeMBSSessionN4Information:                                   "MBSSessionN4Information",
	TypeMBSN4RespFlags:                                            "MBSN4RespFlags",
	TypeTunnelPassword:                                            "TunnelPassword",
	TypeAreaSessionID:                                             "AreaSessionID",
	TypePeerUPRestartReport:                                       "PeerUPRestartReport",
	TypeDSCPToPPIControlInformation:                               "DSCPToPPIControlInformation",
	TypeDSCPToPPIMappingInformation:                               "DSCPToPPIMappingInformation",
	TypePFCPSDRspFlags:                                            "PFCPSDRspFlags",
	TypeQERIndications:                                            "QERIndications",
	TypeVendorSpecificNodeReportType:                              "VendorSpecificNodeReportType",
	TypeConfiguredTimeDomain:                                      "ConfiguredTimeDomain",
	TypeMetadata:                                                  "Metadata",
	TypeTrafficParameterMeasurementControlInformation:             "TrafficParameterMeasurementControlInformation",
	TypeTrafficParameterMeasurementReport:                         "TrafficParameterMeasurementReport",
	TypeTrafficParameterThreshold:                                 "TrafficParameterThreshold",
	TypeDLPeriodicity:                                             "DLPeriodicity",
	TypeN6JitterMeasurement:                                       "N6JitterMeasurement",
	TypeTrafficParameterMeasurementIndication:                     "TrafficParameterMeasurementIndication",
	TypeULPeriodicity:                                             "ULPeriodicity",
	TypeMPQUICControlInformation:                                  "MPQUICControlInformation",
	TypeMPQUICParameters:                                          "MPQUICParameters",
	TypeMPQUICAddressInformation:                                  "MPQUICAddressInformation",
	TypeTransportMode:                                             "TransportMode",
	TypeProtocolDescription:                                       "ProtocolDescription",
	TypeReportingSuggestionInfo:                                   "ReportingSuggestionInfo",
	TypeTLContainer:                                               "TLContainer",
	TypeMeasurementIndication:                                     "MeasurementIndication",
	TypeHPLMNSNSSAI:                                               "HPLMNSNSSAI",
	TypeMediaTransportProtocol:                                    "MediaTransportProtocol",
	TypeRTPHeaderExtensionInformation:                             "RTPHeaderExtensionInformation",
	TypeRTPPayloadInformation:                                     "RTPPayloadInformation",
	TypeRTPHeaderExtensionType:                                    "RTPHeaderExtensionType",
	TypeRTPHeaderExtensionID:                                      "RTPHeaderExtensionID",
	TypeRTPPayloadType:                                            "RTPPayloadType",
	TypeRTPPayloadFormat:                                          "RTPPayloadFormat",
	TypeExtendedDLBufferingNotificationPolicy:                     "ExtendedDLBufferingNotificationPolicy",
	TypeMTSDTControlInformation:                                   "MTSDTControlInformation",
	TypeReportingThresholds:                                       "ReportingThresholds",
	TypeRTPHeaderExtensionAdditionalInformation:                   "RTPHeaderExtensionAdditionalInformation",
	TypeMappedN6IPAddress:                                         "MappedN6IPAddress",
	TypeN6RoutingInformation:                                      "N6RoutingInformation",
	TypeURI:                                                       "URI",
	TypeUELevelMeasurementsConfiguration:                          "UELevelMeasurementsConfiguration",
	TypeReportingControlInformation:                               "ReportingControlInformation",
}

var groupedTypes = map[Type]struct{}{
	TypeCreatePDR: {},
	TypePDI: {},
	TypeCreateFAR: {},
	TypeForwardingParameters: {},
	TypeDuplicatingParameters: {},
	TypeCreateURR: {},
	TypeCreateQER: {},
	TypeCreatedPDR: {},
	TypeUpdatePDR: {},
	TypeUpdateFAR: {},
	TypeUpdateForwardingParameters: {},
	TypeUpdateBARWithinSessionReportResponse: {},
	TypeUpdateURR: {},
	TypeUpdateQER: {},
	TypeRemovePDR: {},
	TypeRemoveFAR: {},
	TypeRemoveURR: {},
	TypeRemoveQER: {},
	TypeLoadControlInformation: {},
	TypeOverloadControlInformation: {},
	TypeApplicationIDsPFDs: {},
	TypePFDContext: {},
	TypeApplicationDetectionInformation: {},
	TypeQueryURR: {},
	TypeUsageReportWithinSessionModificationResponse: {},
	TypeUsageReportWithinSessionDeletionResponse: {},
	TypeUsageReportWithinSessionReportRequest: {},
	TypeDownlinkDataReport: {},
	TypeCreateBAR: {},
	TypeUpdateBAR: {},
	TypeRemoveBAR: {},
	TypeErrorIndicationReport: {},
	TypeUserPlanePathFailureReport: {},
	TypeUpdateDuplicatingParameters: {},
	TypeAggregatedURRs: {},
	TypeCreateTrafficEndpoint: {},
	TypeCreatedTrafficEndpoint: {},
	TypeUpdateTrafficEndpoint: {},
	TypeRemoveTrafficEndpoint: {},
	TypeEthernetPacketFilter: {},
	TypeEthernetTrafficInformation: {},
	TypeAdditionalMonitoringTime: {},
	TypeCreateMAR: {},
	Type3GPPAccessForwardingActionInformation: {},
	TypeNon3GPPAccessForwardingActionInformation: {},
	TypeRemoveMAR: {},
	TypeUpdateMAR: {},
	TypeUpdate3GPPAccessForwardingActionInformation: {},
	TypeUpdateNon3GPPAccessForwardingActionInformation: {},
	TypePFCPSessionRetentionInformation: {},
	TypeUserPlanePathRecoveryReport: {},
	TypeIPMulticastAddressingInfo: {},
	TypeJoinIPMulticastInformationWithinUsageReport: {},
	TypeLeaveIPMulticastInformationWithinUsageReport: {},
	TypeCreatedBridgeInfoForTSC: {},
	TypeTSCManagementInformationWithinSessionModificationRequest: {},
	TypeTSCManagementInformationWithinSessionModificationResponse: {},
	TypeTSCManagementInformationWithinSessionReportRequest: {},
	TypeClockDriftControlInformation: {},
	TypeClockDriftReport: {},
	TypeRemoveSRR: {},
	TypeCreateSRR: {},
	TypeUpdateSRR: {},
	TypeSessionReport: {},
	TypeAccessAvailabilityControlInformation: {},
	TypeAccessAvailabilityReport: {},
	TypeProvideATSSSControlInformation: {},
	TypeATSSSControlParameters: {},
	TypeMPTCPParameters: {},
	TypeATSSSLLParameters: {},
	TypePMFParameters: {},
	TypeUEIPAddressPoolInformation: {},
	TypeGTPUPathQoSControlInformation: {},
	TypeGTPUPathQoSReport: {},
	TypeQoSInformationInGTPUPathQoSReport: {},
	TypeQoSMonitoringPerQoSFlowControlInformation: {},
	TypeQoSMonitoringReport: {},
	TypePacketRateStatusReport: {},
	TypeEthernetContextInformation: {},
	TypeRedundantTransmissionParameters: {},
	TypeUpdatedPDR: {},
	TypeProvideRDSConfigurationInformation: {},
	TypeQueryPacketRateStatusWithinSessionModificationRequest: {},
	TypePacketRateStatusReportWithinSessionModificationResponse: {},
	TypeUEIPAddressUsageInformation: {},
	TypeRedundantTransmissionForwardingParameters: {},
	TypeTransportDelayReporting: {},
	TypePartialFailureInformation: {},
	TypeL2TPTunnelInformation: {},
	TypeL2TPSessionInformation: {},
	TypeCreatedL2TPSession: {},
	TypePFCPSessionChangeInfo: {},
	TypePeerUPRestartReport: {},
}
