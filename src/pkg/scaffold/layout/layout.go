// Package layout holds the fixed Lucid Engine project layout and the literal file contents
// written after it is materialized.
package layout

import (
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold/tree"
)

// DefaultProjectName is the root directory used when no project name is given.
const DefaultProjectName = "MyLucidGame"

// IgnoreFiles are created empty, never with placeholder content.
var IgnoreFiles = tree.NewNameSet(
	"README.md",
	"Cargo.toml",
	"CMakeLists.txt",
	".gitignore",
	"LICENSE.md",
)

// SourceExtensions are the extensions that receive a placeholder line.
var SourceExtensions = tree.NewNameSet(".rs", ".cpp", ".h", ".py", ".lua")

// LucidEngine returns a new copy of the project layout rooted at the project directory.
func LucidEngine() tree.Dir {
	return tree.Dir{
		"lucid-engine": tree.Dir{
			"LICENSE.md": tree.File{},
			"README.md":  tree.File{},
			"build": tree.Dir{
				"CMakeLists.txt":         tree.File{},
				"lucid-stack-builder.py": tree.File{},
				"Cargo.toml":             tree.File{},
				"platform": tree.Dir{
					"android.toml": tree.File{},
					"vulkan-cmake": tree.File{},
				},
				"dist": tree.Dir{
					"lucid-trial.zip":       tree.File{},
					"lucid-full-src.tar.gz": tree.File{},
				},
			},
			"workspaces": tree.Dir{
				"Cargo.toml": tree.File{},
				"meta": tree.Dir{
					"unicity": tree.Dir{
						"Cargo.toml": tree.File{},
						"src": tree.Dir{
							"lib.rs":        tree.File{},
							"graph.rs":      tree.File{},
							"reflection.rs": tree.File{},
						},
						"examples": tree.Dir{
							"dep_viz.rs": tree.File{},
						},
						"tests": tree.Dir{
							"graph_cycle_test.rs": tree.File{},
						},
					},
					"serializer": tree.Dir{
						"Cargo.toml": tree.File{},
						"src": tree.Dir{
							"lib.rs":    tree.File{},
							"stream.rs": tree.File{},
						},
						"examples": tree.Dir{
							"replay_demo.rs": tree.File{},
						},
					},
					"editor": tree.Dir{
						"Cargo.toml": tree.File{},
						"src": tree.Dir{
							"lib.rs":          tree.File{},
							"imgui_panels.rs": tree.File{},
							"fusion_mode.rs":  tree.File{},
						},
						"examples": tree.Dir{
							"live_debug.rs": tree.File{},
						},
					},
					"neural": tree.Dir{
						"Cargo.toml": tree.File{},
						"src": tree.Dir{
							"lib.rs":         tree.File{},
							"models.rs":      tree.File{},
							"suggestions.rs": tree.File{},
						},
						"examples": tree.Dir{
							"prompt_gen.rs": tree.File{},
						},
					},
					"qiss": tree.Dir{
						"Cargo.toml": tree.File{},
						"src": tree.Dir{
							"lib.rs":          tree.File{},
							"orchestrator.rs": tree.File{},
						},
						"examples": tree.Dir{
							"cloud_preview.rs": tree.File{},
						},
					},
					"link": tree.Dir{
						"Cargo.toml": tree.File{},
						"src": tree.Dir{
							"lib.rs":      tree.File{},
							"rollback.rs": tree.File{},
						},
						"examples": tree.Dir{
							"mp_sync.rs": tree.File{},
						},
					},
					"sdk": tree.Dir{
						"Cargo.toml": tree.File{},
						"src": tree.Dir{
							"lib.rs": tree.File{},
							"templates": tree.Dir{
								"quantum_stack.rs": tree.File{},
							},
						},
						"examples": tree.Dir{
							"custom_stack.rs": tree.File{},
						},
					},
				},
				"rust": tree.Dir{
					"lucid-ffi": tree.Dir{
						"Cargo.toml": tree.File{},
						"src": tree.Dir{
							"ffi.rs": tree.File{},
						},
					},
				},
			},
			"stacks": tree.Dir{
				"Lucid-Illuminati": tree.Dir{
					"src": tree.Dir{
						"core": tree.Dir{
							"LI_SceneGraph.cpp":  tree.File{},
							"LI_PostProcess.cpp": tree.File{},
						},
						"features": tree.Dir{
							"RayTracing": tree.Dir{
								"LI_PathTracer.cpp": tree.File{},
								"LI_VXGI.cpp":       tree.File{},
							},
							"Volumetrics": tree.Dir{
								"LI_FogRenderer.cpp": tree.File{},
							},
							"GPUCompute": tree.Dir{
								"LI_ParticleShaders.cpp": tree.File{},
							},
							"NeuralShaders": tree.Dir{
								"LI_NeuralGen.cpp": tree.File{},
							},
						},
						"pipelines": tree.Dir{
							"LI_ShaderVaultImporter.py": tree.File{},
						},
						"meta-hooks": tree.Dir{
							"LI_EntityStream.cpp": tree.File{},
						},
					},
					"include":  tree.Dir{},
					"tests":    tree.Dir{},
					"bindings": tree.Dir{},
				},
				"Lucid-Disassembly": tree.Dir{
					"src": tree.Dir{
						"core": tree.Dir{
							"LD_RigidBody.cpp": tree.File{},
							"LD_Collision.cpp": tree.File{},
						},
						"features": tree.Dir{
							"Destructibles": tree.Dir{
								"LD_ProceduralDebris.cpp": tree.File{},
								"LD_ForceFields.cpp":      tree.File{},
							},
							"Fluids": tree.Dir{
								"LD_ParticleFluids.cpp": tree.File{},
							},
							"Vehicles": tree.Dir{
								"LD_CharacterPhysics.cpp": tree.File{},
							},
						},
						"pipelines": tree.Dir{
							"LD_PhysicsDebugger.py": tree.File{},
						},
						"meta-hooks": tree.Dir{
							"LD_ReplayBuffer.cpp": tree.File{},
						},
					},
					"include":  tree.Dir{},
					"tests":    tree.Dir{},
					"bindings": tree.Dir{},
				},
				"Lucid-Harmonia": tree.Dir{
					"src": tree.Dir{
						"core": tree.Dir{
							"LH_SpatialMixer.cpp": tree.File{},
							"LH_EffectsBus.cpp":   tree.File{},
						},
						"features": tree.Dir{
							"Procedural": tree.Dir{
								"LH_DynamicTracks.cpp": tree.File{},
							},
							"PhysicsIntegration": tree.Dir{
								"LH_EnvInteraction.cpp": tree.File{},
							},
						},
						"pipelines": tree.Dir{
							"LH_AudioImporter.py": tree.File{},
						},
					},
					"include":  tree.Dir{},
					"tests":    tree.Dir{},
					"bindings": tree.Dir{},
				},
				"Lucid-Diffuser": tree.Dir{
					"src": tree.Dir{
						"core": tree.Dir{
							"LD_InputMapper.cpp": tree.File{},
							"LD_NetSync.cpp":     tree.File{},
						},
						"features": tree.Dir{
							"Multiplayer": tree.Dir{
								"LD_RPCSystem.cpp": tree.File{},
							},
							"HotReload": tree.Dir{
								"LD_ConfigReloader.cpp": tree.File{},
							},
						},
						"pipelines": tree.Dir{
							"LD_VRTracker.py": tree.File{},
						},
					},
					"include":  tree.Dir{},
					"tests":    tree.Dir{},
					"bindings": tree.Dir{},
				},
				"Lucid-Charisma": tree.Dir{
					"src": tree.Dir{
						"core": tree.Dir{
							"LC_SkeletalRig.cpp":  tree.File{},
							"LC_StateMachine.cpp": tree.File{},
						},
						"features": tree.Dir{
							"Procedural": tree.Dir{
								"LC_MotionBlending.cpp": tree.File{},
							},
							"Facial": tree.Dir{
								"LC_MorphTargets.cpp": tree.File{},
							},
							"Ragdoll": tree.Dir{
								"LC_PhysicsRagdoll.cpp": tree.File{},
							},
						},
						"pipelines": tree.Dir{
							"LC_AnimImporter.py": tree.File{},
						},
					},
					"include":  tree.Dir{},
					"tests":    tree.Dir{},
					"bindings": tree.Dir{},
				},
				"Lucid-Ekpyrosa": tree.Dir{
					"src": tree.Dir{
						"core": tree.Dir{
							"LE_SceneEditor.cpp": tree.File{},
							"LE_ScriptAPI.cpp":   tree.File{},
						},
						"features": tree.Dir{
							"Procedural": tree.Dir{
								"LE_TerrainGen.cpp":     tree.File{},
								"LE_WorldPartition.cpp": tree.File{},
							},
							"Debugging": tree.Dir{
								"LE_PerfVisualizer.cpp": tree.File{},
							},
						},
						"pipelines": tree.Dir{
							"LE_AssetPipeline.py": tree.File{},
						},
					},
					"include":  tree.Dir{},
					"tests":    tree.Dir{},
					"bindings": tree.Dir{},
				},
				"Lucid-Alrena": tree.Dir{
					"src": tree.Dir{
						"core": tree.Dir{
							"LA_BehaviorTree.cpp": tree.File{},
							"LA_Pathfinder.cpp":   tree.File{},
						},
						"features": tree.Dir{
							"Procedural": tree.Dir{
								"LA_ContentGen.cpp": tree.File{},
							},
							"Adaptive": tree.Dir{
								"LA_LearningNPCs.cpp": tree.File{},
							},
							"EventHooks": tree.Dir{
								"LA_GameLogic.cpp": tree.File{},
							},
						},
						"pipelines": tree.Dir{
							"LA_AIDebugger.py": tree.File{},
						},
						"meta-hooks": tree.Dir{
							"LA_NeuralAdapt.cpp": tree.File{},
						},
					},
					"include":  tree.Dir{},
					"tests":    tree.Dir{},
					"bindings": tree.Dir{},
				},
				"Lucid-LaunchPad": tree.Dir{
					"src": tree.Dir{
						"core": tree.Dir{
							"LLP_BuildSystem.cpp": tree.File{},
							"LLP_Packager.cpp":    tree.File{},
						},
						"features": tree.Dir{
							"HotPatching": tree.Dir{
								"LLP_Incremental.cpp": tree.File{},
							},
							"Profiling": tree.Dir{
								"LLP_Telemetry.cpp": tree.File{},
							},
							"Marketplace": tree.Dir{
								"LLP_PluginSystem.cpp": tree.File{},
							},
						},
						"pipelines": tree.Dir{
							"LLP_ExportRunner.py": tree.File{},
						},
					},
					"include":  tree.Dir{},
					"tests":    tree.Dir{},
					"bindings": tree.Dir{},
				},
			},
			"core": tree.Dir{
				"src": tree.Dir{
					"Core_ECS.cpp":           tree.File{},
					"Core_UnicityBridge.cpp": tree.File{},
					"Core_QissTelemetry.cpp": tree.File{},
				},
				"include": tree.Dir{},
				"archetypes": tree.Dir{
					"SerializableDestructible.ecs": tree.File{},
					"NeuralNPC.ecs":                tree.File{},
				},
			},
			"plugins": tree.Dir{
				"Lucid-QuantumExt": tree.Dir{
					"src": tree.Dir{},
				},
				"Lucid-VRExt": tree.Dir{
					"src": tree.Dir{},
				},
			},
		},
		"Content": tree.Dir{
			"Meta": tree.Dir{
				"EditorThemes": tree.Dir{},
				"Models": tree.Dir{
					"shader_gen.torch": tree.File{},
				},
			},
			"Blueprints": tree.Dir{
				"Meta": tree.Dir{},
				"Alrena": tree.Dir{
					"BT_AdaptiveGuard.uasset": tree.File{},
				},
				"Charisma": tree.Dir{},
			},
			"Meshes": tree.Dir{
				"Illuminati":  tree.Dir{},
				"Disassembly": tree.Dir{},
				"Ekpyrosa":    tree.Dir{},
			},
			"Materials": tree.Dir{
				"Procedural": tree.Dir{},
			},
			"Sounds": tree.Dir{
				"Procedural": tree.Dir{},
			},
			"Maps": tree.Dir{
				"PhysicsDemo": tree.Dir{},
				"AIDemo":      tree.Dir{},
			},
			"Animations": tree.Dir{
				"Facial": tree.Dir{},
			},
			"Textures": tree.Dir{},
		},
		"Source": tree.Dir{
			"MyLucidGame": tree.Dir{
				"Private": tree.Dir{
					"GameOrchestrator.cpp": tree.File{},
					"MP_Session.cpp":       tree.File{},
					"GameWorld.cpp":        tree.File{},
					"CustomAlrena.cpp":     tree.File{},
				},
				"Public": tree.Dir{},
			},
			"Stacks-Overrides": tree.Dir{
				"Disassembly": tree.Dir{},
				"Neural":      tree.Dir{},
			},
		},
		"Config": tree.Dir{
			"meta": tree.Dir{
				"Unicity.yaml":              tree.File{},
				"Serializer-Versioning.ini": tree.File{},
				"Editor-Docks.ini":          tree.File{},
				"Neural-Prompts.toml":       tree.File{},
				"Qiss-Cloud.yaml":           tree.File{},
				"Link-Protocol.ini":         tree.File{},
				"License-Auth.ini":          tree.File{},
			},
			"stack-overrides": tree.Dir{
				"Illuminati-RayTracing.ini": tree.File{},
				"Disassembly-Fluids.yaml":   tree.File{},
				"Harmonia-Spatial.yaml":     tree.File{},
				"Diffuser-Net.ini":          tree.File{},
				"Charisma-Anim.ini":         tree.File{},
				"Ekpyrosa-PCG.yaml":         tree.File{},
				"Alrena-Behavior.yaml":      tree.File{},
				"LaunchPad-Build.ini":       tree.File{},
			},
			"cross-stack": tree.Dir{
				"ECS-Archetypes.yaml": tree.File{},
			},
			"DefaultEngine.ini": tree.File{},
		},
		"Builds": tree.Dir{
			"target": tree.Dir{
				"debug": tree.Dir{},
			},
			"cloud": tree.Dir{},
			"Windows": tree.Dir{
				"MyLucidGame.exe": tree.File{},
			},
			"Android": tree.Dir{},
			"Web":     tree.Dir{},
		},
		"Docs": tree.Dir{
			"Meta-Overview.md":             tree.File{},
			"Rust-Interop.md":              tree.File{},
			"SDK-Examples.md":              tree.File{},
			"Licensing-Model.md":           tree.File{},
			"Lucid-Illuminati-Features.md": tree.File{},
			"Cross-Stack-Synergies.md":     tree.File{},
		},
		"Telemetry": tree.Dir{
			"session-2025-10-07.json": tree.File{},
		},
		"examples": tree.Dir{
			"lucid-mp-demo": tree.Dir{
				"Cargo.toml": tree.File{},
				"src": tree.Dir{
					"main.rs": tree.File{},
				},
			},
		},
		".gitignore": tree.File{},
	}
}
